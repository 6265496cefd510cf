package httpserver

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"katanatsl"
	"katanatsl/internal/render"

	"github.com/go-chi/chi/v5"
)

var contentTypes = map[string]string{
	"json": "application/json; charset=utf-8",
	"yaml": "application/yaml; charset=utf-8",
	"text": "text/plain; charset=utf-8",
}

// decodeBody reads a TSL document from the request body. On failure the
// response has already been written.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (*katanatsl.Document, bool) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBytes)
	raw, err := katanatsl.ReadTSL(body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "parse error: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	doc, err := katanatsl.Decode(raw, katanatsl.WithWorkers(s.cfg.Workers))
	if err != nil {
		http.Error(w, "decode error: "+err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	}
	return doc, true
}

func (s *Server) format(r *http.Request) (string, bool) {
	f := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if f == "" {
		f = s.cfg.Format
	}
	return f, render.Valid(f)
}

// write renders into a buffer first so a render failure can still become a
// 500 instead of a truncated 200.
func (s *Server) write(w http.ResponseWriter, format string, v any) {
	var buf bytes.Buffer
	if err := render.Write(&buf, format, v); err != nil {
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	format, ok := s.format(r)
	if !ok {
		http.Error(w, "unknown format "+format, http.StatusBadRequest)
		return
	}
	doc, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	s.write(w, format, doc)
}

type patchName struct {
	Bank int    `json:"bank"`
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	out := []patchName{}
	for _, ref := range doc.Patches() {
		out = append(out, patchName{Bank: ref.Bank, Slot: ref.Slot, Name: ref.Patch.Name})
	}
	s.write(w, "json", out)
}

func (s *Server) handleEnums(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, d := range katanatsl.Domains() {
		names = append(names, d.Name())
	}
	s.write(w, "json", names)
}

func (s *Server) handleEnum(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "domain")
	d, ok := katanatsl.LookupDomain(name)
	if !ok {
		http.Error(w, "unknown enum domain "+name, http.StatusNotFound)
		return
	}
	format, ok := s.format(r)
	if !ok {
		http.Error(w, "unknown format "+format, http.StatusBadRequest)
		return
	}
	if format == "text" {
		s.write(w, format, d)
		return
	}
	s.write(w, format, struct {
		Name     string              `json:"name"`
		Variants []katanatsl.Variant `json:"variants"`
	}{d.Name(), d.Variants()})
}
