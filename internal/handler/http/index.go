package http

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexPage []byte

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}
