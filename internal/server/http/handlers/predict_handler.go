package handlers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/churnscope/internal/preprocess"
	"github.com/avdeyev/churnscope/internal/server/http/dto"
)

// PredictHandler serves online and batch scoring requests.
type PredictHandler struct {
	facade PredictFacade
}

// NewPredictHandler creates PredictHandler instance.
func NewPredictHandler(facade PredictFacade) *PredictHandler {
	return &PredictHandler{facade: facade}
}

// Online handles POST /api/predict.
func (h *PredictHandler) Online(c *gin.Context) {
	var req dto.OnlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	verdict, err := h.facade.PredictOnline(c.Request.Context(), req.Record())
	if err != nil {
		var encErr *preprocess.EncodingError
		if errors.As(err, &encErr) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewEncodingErrorResponse(encErr))
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewOnlineResponse(verdict))
}

// Batch handles POST /api/predict/batch. The upload is a multipart CSV with
// a header row naming the profile columns.
func (h *PredictHandler) Batch(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := readCSVRows(file)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	outcome, err := h.facade.PredictBatch(c.Request.Context(), rows)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewBatchResponse(outcome, h.facade.ModelVersion()))
}

// readCSVRows turns a headered CSV stream into one map per data row. A row
// with the wrong cell count is kept: missing columns are simply absent from
// its map and surface downstream as a per-row missing-field error, so one
// ragged row never sinks the rest of the upload.
func readCSVRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty upload")
		}
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, csv.ErrFieldCount) {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
