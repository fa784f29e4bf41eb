package server

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dedupserver/normalization"
	"dedupserver/server/middleware"
)

// normalizeRequest запрос нормализации одного названия
type normalizeRequest struct {
	Name string `json:"name" binding:"required"`
}

// analyzeRequest запрос анализа списка названий на дубликаты
type analyzeRequest struct {
	Names     []string `json:"names" binding:"required"`
	Threshold *int     `json:"threshold"`
}

// exportRequest запрос экспорта результата анализа
type exportRequest struct {
	Names     []string `json:"names" binding:"required"`
	Threshold *int     `json:"threshold"`
	Format    string   `json:"format"`
}

// groupResponse группа дубликатов в ответе API
type groupResponse struct {
	Index      int      `json:"index"`
	Confidence float64  `json:"confidence"`
	Names      []string `json:"names"`
}

// handleHealth возвращает статус сервиса
// GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleNormalize нормализует одно название
// POST /api/normalize
func (s *Server) handleNormalize(c *gin.Context) {
	var req normalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       req.Name,
		"normalized": s.normalizer.Normalize(req.Name),
	})
}

// handleAnalyze находит группы похожих названий в переданном списке
// POST /api/duplicates/analyze
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	groups, err := s.analyze(req.Names, req.Threshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responses := make([]groupResponse, len(groups))
	for i, group := range groups {
		responses[i] = groupResponse{
			Index:      i + 1,
			Confidence: group.Confidence,
			Names:      group.Names,
		}
	}

	s.logger.Info("Duplicate analysis completed",
		"total_names", len(req.Names),
		"total_groups", len(groups),
		"request_id", middleware.GetRequestID(c.Request.Context()))

	c.JSON(http.StatusOK, gin.H{
		"groups":       responses,
		"total_groups": len(groups),
		"total_names":  len(req.Names),
	})
}

// handleExport выполняет анализ и отдает результат файлом
// POST /api/duplicates/export
func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	groups, err := s.analyze(req.Names, req.Threshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := normalization.ExportFormat(req.Format)
	if format == "" {
		format = normalization.FormatExcel
	}

	switch format {
	case normalization.FormatExcel:
		workbook, err := s.exporter.ExcelWorkbook(groups)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer workbook.Close()

		buffer, err := workbook.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="duplicate_groups.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
	case normalization.FormatCSV:
		var buffer bytes.Buffer
		if err := s.exporter.WriteCSV(&buffer, groups); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="duplicate_groups.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buffer.Bytes())
	case normalization.FormatJSON:
		c.JSON(http.StatusOK, gin.H{
			"exported_at":  time.Now().Format(time.RFC3339),
			"total_groups": len(groups),
			"groups":       normalization.ExportedGroups(groups),
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported export format: %s", req.Format)})
	}
}

// analyze строит таблицу нормализованных форм и запускает кластеризацию.
// Ненулевой threshold из запроса переопределяет порог из конфигурации.
func (s *Server) analyze(names []string, threshold *int) ([]normalization.DuplicateGroup, error) {
	clusterer := s.clusterer
	if threshold != nil {
		if *threshold < 0 {
			return nil, fmt.Errorf("threshold must not be negative, got %d", *threshold)
		}
		clusterer = normalization.NewDuplicateClustererWithLengthGap(*threshold, s.cfg.MaxLengthGap)
	}

	normalized := s.normalizer.BuildNormalizedMap(names)
	return clusterer.FindGroups(names, normalized), nil
}
