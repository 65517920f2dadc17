package ui

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sheetlens/domain/chart"
	"sheetlens/domain/core"
	"sheetlens/domain/describe"
	"sheetlens/domain/table"
	"sheetlens/internal/errors"
)

func (s *Server) handleIndex(c *gin.Context) {
	entries, err := s.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[API] failed to list datasets: %v", err)
		entries = nil
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Datasets": entries,
	})
}

func (s *Server) handleDatasetUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	entry, err := s.ingestUpload(c.Request.Context(), fileHeader)
	if err != nil {
		log.Printf("[API] upload of %s failed: %v", fileHeader.Filename, err)
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleListDatasets(c *gin.Context) {
	entries, err := s.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[API] failed to list datasets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list datasets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"datasets": entries,
		"count":    len(entries),
	})
}

func (s *Server) handleGetDataset(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDatasetRows(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 1000 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	ds, entry, err := s.datasetRows(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	rows := ds.Slice(offset, limit)
	c.JSON(http.StatusOK, gin.H{
		"dataset": entry.DisplayName,
		"columns": ds.Columns,
		"rows":    rowsJSON(ds.Columns, rows),
		"offset":  offset,
		"limit":   limit,
		"total":   ds.RowCount(),
	})
}

func (s *Server) handleColumnStats(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	column := c.Query("column")
	if column == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column parameter is required"})
		return
	}

	ds, entry, err := s.datasetRows(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	colProfile, ok := entry.ProfileFor(column)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column: " + column})
		return
	}

	summary := describe.Describe(ds, column, colProfile.Kind)
	if summary == nil {
		// A displayable empty state, not an error
		c.JSON(http.StatusOK, gin.H{"available": false, "column": column})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "summary": summary})
}

func (s *Server) handleChart(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, ok := chart.ParseKind(c.DefaultQuery("kind", string(chart.KindBar)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be bar, line or pie"})
		return
	}
	xField := c.Query("x")
	yFields := c.QueryArray("y")

	ds, _, err := s.datasetRows(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	series := chart.Aggregate(ds, xField, yFields, kind)
	c.JSON(http.StatusOK, series)
}

func (s *Server) handleDeleteDataset(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.dropDataset(c.Request.Context(), id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id.String()})
}

// rowsJSON converts typed rows into plain JSON objects in column order;
// Empty cells serialize as null.
func rowsJSON(columns []string, rows []table.Row) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]interface{}, len(columns))
		for _, col := range columns {
			v := row.Get(col)
			if n, ok := v.Float(); ok {
				obj[col] = n
			} else if v.IsEmpty() {
				obj[col] = nil
			} else {
				obj[col] = v.String()
			}
		}
		out = append(out, obj)
	}
	return out
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeUnsupportedFile, errors.CodeEmptyInput:
		return http.StatusBadRequest
	case errors.CodeParseFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
