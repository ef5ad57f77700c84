// Package server exposes code-table reports over HTTP.
package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffmantree/internal/report"
)

// MaxBodySize is the largest request body accepted by POST /v1/codes.
const MaxBodySize = 1 << 20

// New returns a gin.Engine serving:
//
//     GET  /healthz
//     POST /v1/codes?mode=bytes|runes|words
//
// The body of POST /v1/codes is the raw input; the response is the JSON
// form of a report.Report.
//
func New(log *logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/v1/codes", func(c *gin.Context) {
		mode, err := report.ParseMode(c.Query("mode"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodySize+1))
		if err != nil {
			log.Warningf("reading request body: %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(data) > MaxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}

		rep, err := report.Build(mode, data)
		if errors.Is(err, report.ErrInvalidUTF8) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		} else if err != nil {
			log.Errorf("building report: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		log.Debugf("mode=%s symbols=%d distinct=%d bits=%d", rep.Mode, rep.TotalSymbols, rep.DistinctSymbols, rep.WeightedBits)
		c.JSON(http.StatusOK, rep)
	})

	return r
}
