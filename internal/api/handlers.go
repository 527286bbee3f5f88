package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/store"
	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/tree"
)

type Server struct {
	store *store.Store
	log   logrus.FieldLogger
}

func NewServer(s *store.Store, log logrus.FieldLogger) *Server {
	return &Server{store: s, log: log}
}

func (s *Server) Routes(r *mux.Router) {
	r.HandleFunc("/insert", s.HandleInsert).Methods("POST")
	r.HandleFunc("/remove/{value}", s.HandleRemove).Methods("DELETE")
	r.HandleFunc("/find/{value}", s.HandleFind).Methods("GET")
	r.HandleFunc("/parent/{value}", s.HandleParent).Methods("GET")
	r.HandleFunc("/traversal/{order}", s.HandleTraversal).Methods("GET")
	r.HandleFunc("/stats", s.HandleStats).Methods("GET")
}

func (s *Server) HandleInsert(w http.ResponseWriter, r *http.Request) {
	var data struct {
		Value *int64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if data.Value == nil {
		http.Error(w, "Value is required", http.StatusBadRequest)
		return
	}

	s.store.Insert(*data.Value)
	s.log.WithField("value", *data.Value).Info("inserted")
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) HandleRemove(w http.ResponseWriter, r *http.Request) {
	value, ok := s.pathValue(w, r)
	if !ok {
		return
	}

	removed := s.store.Remove(value)
	s.log.WithFields(logrus.Fields{"value": value, "removed": removed}).Info("remove")
	s.writeJSON(w, map[string]bool{"removed": removed})
}

func (s *Server) HandleFind(w http.ResponseWriter, r *http.Request) {
	value, ok := s.pathValue(w, r)
	if !ok {
		return
	}

	found, err := s.store.Find(value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]int64{"value": found})
}

func (s *Server) HandleParent(w http.ResponseWriter, r *http.Request) {
	value, ok := s.pathValue(w, r)
	if !ok {
		return
	}

	parent, err := s.store.Parent(value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]int64{"parent": parent})
}

func (s *Server) HandleTraversal(w http.ResponseWriter, r *http.Request) {
	order, ok := tree.ParseOrder(mux.Vars(r)["order"])
	if !ok {
		http.Error(w, "Unknown traversal order", http.StatusBadRequest)
		return
	}

	values := s.store.Traverse(order)
	if values == nil {
		values = []int64{}
	}
	s.writeJSON(w, struct {
		Order  tree.Order `json:"order"`
		Values []int64    `json:"values"`
	}{order, values})
}

func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.store.Stats())
}

func (s *Server) pathValue(w http.ResponseWriter, r *http.Request) (int64, bool) {
	value, err := strconv.ParseInt(mux.Vars(r)["value"], 10, 64)
	if err != nil {
		http.Error(w, "Value must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case store.ErrNotFound, store.ErrNoParent:
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.log.WithError(err).Error("request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("failed to encode response")
	}
}
