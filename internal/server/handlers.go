package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/quotely/kuraberu/internal/config"
	"github.com/quotely/kuraberu/internal/finder"
	"github.com/quotely/kuraberu/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var criteria models.Criteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := criteria.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("compare request",
		zap.String("region", string(criteria.Region)),
		zap.String("priority", string(criteria.Priority)),
		zap.Int("features", criteria.Features.Len()),
	)

	start := time.Now()
	products := s.engine.Compare(s.catalog.Records(), criteria)

	// Display ordering policy: when the request names no sort key, the
	// configured default applies (sponsored placements first by default).
	if criteria.SortBy == "" {
		switch s.config.Compare.DefaultSort {
		case config.SortSponsoredFirst:
			finder.SortSponsoredFirst(products)
		case config.SortPriceRating:
			finder.SortProducts(products, models.SortByPriceRating)
		}
	}

	limit := criteria.Limit
	if max := s.config.Compare.MaxResults; max > 0 && (limit <= 0 || limit > max) {
		limit = max
	}
	total := len(products)
	products = finder.TopN(products, limit)

	s.respondJSON(w, http.StatusOK, models.CompareResponse{
		Products:  products,
		Total:     total,
		QueryTime: time.Since(start).Milliseconds(),
		Criteria:  criteria,
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		records := s.catalog.Records()
		if limit > 0 && limit < len(records) {
			records = records[:limit]
		}
		s.respondJSON(w, http.StatusOK, map[string]interface{}{
			"products": records,
			"total":    s.catalog.Len(),
		})
		return
	}

	ids, err := s.index.Search(query, limit)
	if err != nil {
		s.logger.Error("product search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	records := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		if rec := s.catalog.Find(id); rec != nil {
			records = append(records, rec)
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": records,
		"total":    len(records),
		"query":    query,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec := s.catalog.Find(id)
	if rec == nil {
		s.respondError(w, http.StatusNotFound, "product not found")
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": s.catalog.Len(),
		"config": map[string]interface{}{
			"catalog_path":        s.config.Catalog.Path,
			"catalog_watch":       s.config.Catalog.Watch,
			"default_sort":        s.config.Compare.DefaultSort,
			"max_results":         s.config.Compare.MaxResults,
			"other_gender_column": s.config.Compare.OtherGenderColumn,
		},
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
