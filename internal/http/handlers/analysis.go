package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/placement-backend/internal/analysis"
	"github.com/yungbote/placement-backend/internal/http/response"
	"github.com/yungbote/placement-backend/internal/pkg/ctxutil"
	"github.com/yungbote/placement-backend/internal/platform/apierr"
	"github.com/yungbote/placement-backend/internal/platform/envutil"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

type AnalysisHandler struct {
	log      *logger.Logger
	service  analysis.Service
	tracker  *analysis.ProgressTracker
	maxLimit int
}

func NewAnalysisHandler(baseLog *logger.Logger, service analysis.Service, tracker *analysis.ProgressTracker) *AnalysisHandler {
	return &AnalysisHandler{
		log:      baseLog.With("handler", "AnalysisHandler"),
		service:  service,
		tracker:  tracker,
		maxLimit: envutil.Int("ANALYSIS_HISTORY_MAX", 50),
	}
}

type analyzeRequest struct {
	TargetDomain string `json:"target_domain"`
	TargetRole   string `json:"target_role"`
}

// POST /api/analysis/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.StudentID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}

	result, err := h.service.AnalyzeSkillGap(c.Request.Context(), rd.StudentID, req.TargetDomain, req.TargetRole)
	if err != nil {
		h.respondErr(c, "Analyze failed", err, "student_id", rd.StudentID.String())
		return
	}
	response.RespondCreated(c, result)
}

// GET /api/analysis/latest
func (h *AnalysisHandler) Latest(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.StudentID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	result, err := h.service.GetLatest(c.Request.Context(), rd.StudentID)
	if err != nil {
		h.respondErr(c, "Latest failed", err, "student_id", rd.StudentID.String())
		return
	}
	response.RespondOK(c, result)
}

// GET /api/analysis/history
func (h *AnalysisHandler) History(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.StudentID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	limit := queryInt(c, "limit", 0)
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	rows, err := h.service.History(c.Request.Context(), rd.StudentID, limit)
	if err != nil {
		h.respondErr(c, "History failed", err, "student_id", rd.StudentID.String())
		return
	}
	response.RespondOK(c, gin.H{"analyses": rows})
}

// GET /api/analysis/learning-paths
func (h *AnalysisHandler) LearningPaths(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.StudentID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	grouped, err := h.service.ListLearningPaths(c.Request.Context(), rd.StudentID)
	if err != nil {
		h.respondErr(c, "LearningPaths failed", err, "student_id", rd.StudentID.String())
		return
	}
	response.RespondOK(c, gin.H{"learning_paths": grouped})
}

// PATCH /api/analysis/learning-paths/:id/progress
func (h *AnalysisHandler) UpdateProgress(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.StudentID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	pathID, err := uuid.Parse(c.Param("id"))
	if err != nil || pathID == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}

	var upd analysis.ProgressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}

	row, err := h.tracker.UpdateProgress(c.Request.Context(), pathID, rd.StudentID, upd)
	if err != nil {
		h.respondErr(c, "UpdateProgress failed", err, "student_id", rd.StudentID.String(), "path_id", pathID.String())
		return
	}
	response.RespondOK(c, row)
}

// GET /api/analysis/domains
func (h *AnalysisHandler) Domains(c *gin.Context) {
	response.RespondOK(c, gin.H{"domains": h.service.Domains(c.Request.Context())})
}

func (h *AnalysisHandler) respondErr(c *gin.Context, msg string, err error, kv ...interface{}) {
	ae := apierr.From(err)
	if ae.Status >= 500 {
		h.log.Error(msg, append(kv, "error", err)...)
	} else {
		h.log.Warn(msg, append(kv, "error", err)...)
	}
	response.RespondError(c, ae.Status, ae.Code, ae)
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n := 0
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return def
		}
		n = n*10 + int(v[i]-'0')
	}
	return n
}
