package handlers

import "net/http"

// VersionResponse reports the build identity of the running binary.
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Version serves the version endpoint.
type Version struct {
	Info VersionResponse
}

func (v *Version) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, v.Info)
}
