package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goose-quotes/internal/domains/goose/model"
	"goose-quotes/internal/domains/goose/service"
	"goose-quotes/internal/shared/response"
)

type GooseHandler struct {
	service service.ServiceInterface
}

func NewGooseHandler(svc service.ServiceInterface) *GooseHandler {
	return &GooseHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/geese?name=
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) List(c *gin.Context) {
	geese, err := h.service.ListGeese(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, nonNil(geese))
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/geese/flock-leaders
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) ListFlockLeaders(c *gin.Context) {
	geese, err := h.service.ListFlockLeaders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, nonNil(geese))
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/geese/language/:language
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) ListByLanguage(c *gin.Context) {
	geese, err := h.service.ListByLanguage(c.Request.Context(), c.Param("language"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, nonNil(geese))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/geese/:id
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) GetByID(c *gin.Context) {
	g, err := h.service.GetGoose(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/geese
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) Create(c *gin.Context) {
	var req model.CreateGooseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.CreateGoose(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created.ToCreatedResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /api/geese/:id
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) UpdateName(c *gin.Context) {
	var req model.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateName(c.Request.Context(), parseID(c), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /api/geese/:id/motivations
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) UpdateMotivations(c *gin.Context) {
	var req model.UpdateMotivationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateMotivations(c.Request.Context(), parseID(c), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// ACTIONS: POST /api/geese/:id/honk, /generate, /bio
// ════════════════════════════════════════════════════════════════

func (h *GooseHandler) Honk(c *gin.Context) {
	resp, err := h.service.Honk(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *GooseHandler) GenerateQuotes(c *gin.Context) {
	resp, err := h.service.GenerateQuotes(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *GooseHandler) GenerateBio(c *gin.Context) {
	updated, err := h.service.GenerateBio(c.Request.Context(), parseID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// fail renders a service error; collaborator detail stays in the logs
func (h *GooseHandler) fail(c *gin.Context, err error) {
	response.Message(c, model.ToHTTPStatus(err), model.ToMessage(err))
}

// parseID returns 0 for anything that is not an integer.
// The service resolves 0 to not found.
func parseID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func nonNil(geese []model.Goose) []model.Goose {
	if geese == nil {
		return []model.Goose{}
	}
	return geese
}
