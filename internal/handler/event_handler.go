package handler

import (
	"io"
	"net/http"

	"github.com/BangKartavya/evently/internal/dto"
	"github.com/BangKartavya/evently/internal/form"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/internal/upload"
	"github.com/BangKartavya/evently/pkg/middleware"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

// imageField is the multipart field carrying the optional staged image
const imageField = "image"

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService service.EventService
	pipeline     *form.Pipeline
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, pipeline *form.Pipeline) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		pipeline:     pipeline,
	}
}

// stagedImage pulls the optional image file out of the multipart body
func stagedImage(c *gin.Context) (*upload.StagedFile, error) {
	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &upload.StagedFile{Name: fileHeader.Filename, Content: content}, nil
}

// submit runs the form pipeline for create and update requests
func (h *EventHandler) submit(c *gin.Context, mode form.Mode, eventID string) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	var eventForm dto.EventForm
	if err := c.ShouldBind(&eventForm); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid form submission"))
		return
	}

	staged, err := stagedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Unreadable image file"))
		return
	}

	path := c.DefaultPostForm("path", "/profile")
	result, err := h.pipeline.Submit(c.Request.Context(), &form.Submission{
		Mode:        mode,
		EventID:     eventID,
		OrganizerID: userID,
		Form:        &eventForm,
		StagedImage: staged,
		Path:        path,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Event == nil {
		// The submission went nowhere; bounce the client back
		c.Redirect(http.StatusSeeOther, result.Redirect)
		return
	}

	status := http.StatusOK
	if mode == form.ModeCreate {
		status = http.StatusCreated
	}
	c.Header("Location", result.Redirect)
	c.JSON(status, response.Success(dto.ToEventResponse(result.Event)))
}

// Create handles POST /events - multipart event creation
func (h *EventHandler) Create(c *gin.Context) {
	h.submit(c, form.ModeCreate, "")
}

// Update handles PUT /events/:id - multipart event update (organizer only)
func (h *EventHandler) Update(c *gin.Context) {
	h.submit(c, form.ModeUpdate, c.Param("id"))
}

// List handles GET /events - lists events with search and category filter
func (h *EventHandler) List(c *gin.Context) {
	var filter dto.EventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}
	filter.SetDefaults()

	events, totalPages, err := h.eventService.GetAllEvents(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	eventResponses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = dto.ToEventResponse(event)
	}
	c.JSON(http.StatusOK, response.PaginatedPages(eventResponses, filter.Page, filter.Limit, totalPages))
}

// GetByID handles GET /events/:id - retrieves a single event
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(dto.ToEventResponse(event)))
}

// Related handles GET /events/:id/related - events sharing the category
func (h *EventHandler) Related(c *gin.Context) {
	page := pageParam(c, "page")

	events, totalPages, err := h.eventService.GetRelatedEvents(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	eventResponses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = dto.ToEventResponse(event)
	}
	c.JSON(http.StatusOK, response.PaginatedPages(eventResponses, page, service.PageSize, totalPages))
}

// UpdatePage handles GET /events/:id/update - the populated update form view
func (h *EventHandler) UpdatePage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if event.OrganizerID != userID {
		c.JSON(http.StatusForbidden, response.Forbidden(""))
		return
	}
	c.JSON(http.StatusOK, response.Success(dto.ToEventResponse(event)))
}

// Delete handles DELETE /events/:id - removes an event (organizer only)
func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	path := c.DefaultQuery("path", "/events")
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id"), userID, path); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
