package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parascreen/parascreen-api/schema"
)

// TierResp describes one severity tier for clients rendering legends.
type TierResp struct {
	Tier     schema.Tier `json:"tier"`
	Label    string      `json:"label"`
	MinScore float64     `json:"min_score"`
}

func (s *Server) createAssessment(c *gin.Context) {
	var params schema.RawSubmission

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	assessment, validationErrors := s.assessor.Assess(params, time.Now())
	if len(validationErrors) > 0 {
		log.WithField("errors", validationErrors).Debug("submission rejected")
		abortWithEncoding(c, http.StatusBadRequest, validationErrorJSON(validationErrors))
		return
	}

	if s.resultDelay > 0 {
		select {
		case <-c.Request.Context().Done():
			return
		case <-time.After(s.resultDelay):
		}
	}

	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

func (s *Server) riskTiers(c *gin.Context) {
	resp := []TierResp{
		{Tier: schema.TierLow, Label: schema.TierLabels[schema.TierLow], MinScore: 0},
		{Tier: schema.TierModerate, Label: schema.TierLabels[schema.TierModerate], MinScore: schema.ModerateTierScore},
		{Tier: schema.TierHigh, Label: schema.TierLabels[schema.TierHigh], MinScore: schema.HighTierScore},
	}

	c.JSON(http.StatusOK, gin.H{"tiers": resp})
}
