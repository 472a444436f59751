package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/service"
	"scholar-registry/internal/storage"
)

const (
	msgUserAlreadyRegistered = "user already registered!"
	msgUserNotFound          = "user not found!"
	msgInvitationAccepted    = "The Invitation was successful!"
	msgInvitationRefused     = "Invitation refused,the minimum requirements are not satisfied!"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users        service.UserService
	universities service.UniversityService
	exports      service.ExportService
	gatherer     prometheus.Gatherer
	logger       *logrus.Logger
}

// NewHandler builds a Handler. gatherer may be nil, in which case /metrics is not served.
func NewHandler(users service.UserService, universities service.UniversityService, exports service.ExportService, gatherer prometheus.Gatherer, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		users:        users,
		universities: universities,
		exports:      exports,
		gatherer:     gatherer,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), requestLogger(h.logger), corsMiddleware())

	if h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	{
		// the front-end addresses the user controller as both /api/user and /api/User
		h.registerUserRoutes(api.Group("/user"))
		h.registerUserRoutes(api.Group("/User"))

		api.GET("/university", h.listUniversities)
		api.GET("/university/:name", h.getUniversity)
		api.POST("/university", h.addUniversity)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}

func (h *Handler) registerUserRoutes(users *gin.RouterGroup) {
	users.GET("", h.listUsers)
	users.GET("/:id", h.getUser)
	users.PUT("/RegisterUser", h.registerUser)
	users.PUT("/InviteReviewer", h.inviteReviewer)
	users.POST("/export", h.exportUsers)
	users.GET("/exports", h.listExports)
}

type registerUserRequest struct {
	UserName             string `json:"userName" binding:"required"`
	UniversityName       string `json:"universityName" binding:"required"`
	NumberOfPublications int    `json:"numberOfPublications" binding:"min=0"`
}

type addUniversityRequest struct {
	Name  string `json:"name" binding:"required"`
	Score int    `json:"score" binding:"min=0,max=100"`
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if len(users) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) registerUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.RegisterUser(c.Request.Context(), service.RegisterUserInput{
		UserName:             strings.TrimSpace(req.UserName),
		UniversityName:       strings.TrimSpace(req.UniversityName),
		NumberOfPublications: req.NumberOfPublications,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyRegistered) {
			c.String(http.StatusUnprocessableEntity, msgUserAlreadyRegistered)
			return
		}
		h.logger.WithError(err).WithField("user", req.UserName).Warn("register user failed")
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if user == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"user":       user.UserName,
		"university": user.UniversityName,
	}).Info("user registered")
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) inviteReviewer(c *gin.Context) {
	id, err := bindUserID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	accepted, err := h.users.InviteReviewer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusUnprocessableEntity, msgUserNotFound)
			return
		}
		h.logger.WithError(err).WithField("user_id", id).Warn("invite reviewer failed")
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if !accepted {
		c.String(http.StatusOK, msgInvitationRefused)
		return
	}
	h.logger.WithField("user_id", id).Info("reviewer invitation accepted")
	c.String(http.StatusOK, msgInvitationAccepted)
}

// bindUserID reads the user id from the userId query parameter or, when absent,
// from a bare JSON number in the request body. A request carrying neither addresses id 0.
func bindUserID(c *gin.Context) (int64, error) {
	if raw, ok := c.GetQuery("userId"); ok {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, errors.New("invalid user id")
		}
		return id, nil
	}

	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return 0, nil
	}
	var id int64
	if err := c.ShouldBindJSON(&id); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

func (h *Handler) exportUsers(c *gin.Context) {
	location, err := h.exports.ExportUsers(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("roster export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.WithField("location", location).Info("roster exported")
	c.JSON(http.StatusOK, gin.H{"location": location})
}

func (h *Handler) listExports(c *gin.Context) {
	objects, err := h.exports.ListExports(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]StorageObjectResponse, len(objects))
	for i := range objects {
		resp[i] = objectToResponse(objects[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listUniversities(c *gin.Context) {
	universities, err := h.universities.ListUniversities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]UniversityResponse, len(universities))
	for i := range universities {
		resp[i] = universityToResponse(universities[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUniversity(c *gin.Context) {
	university, err := h.universities.GetUniversity(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrUniversityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, universityToResponse(*university))
}

func (h *Handler) addUniversity(c *gin.Context) {
	var req addUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	university, err := h.universities.AddUniversity(c.Request.Context(), strings.TrimSpace(req.Name), req.Score)
	if err != nil {
		if errors.Is(err, service.ErrUniversityAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, universityToResponse(*university))
}

type UserResponse struct {
	ID                   int64  `json:"id"`
	UserName             string `json:"userName"`
	NumberOfPublications int    `json:"numberOfPublications"`
	UniversityName       string `json:"universityName"`
	Reviewer             bool   `json:"reviewer"`
}

type UniversityResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type StorageObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		UserName:             user.UserName,
		NumberOfPublications: user.NumberOfPublications,
		UniversityName:       user.UniversityName,
		Reviewer:             user.Reviewer,
	}
}

func universityToResponse(university domain.University) UniversityResponse {
	return UniversityResponse{
		ID:    university.ID,
		Name:  university.Name,
		Score: university.Score,
	}
}

func objectToResponse(obj storage.ObjectInfo) StorageObjectResponse {
	resp := StorageObjectResponse{
		Key:  obj.Key,
		Size: obj.Size,
	}
	if obj.LastModified != nil && !obj.LastModified.IsZero() {
		v := obj.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}
