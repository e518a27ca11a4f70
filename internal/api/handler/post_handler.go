package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ashuestate/realty-api/internal/api/metrics"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

// PostHandler handles HTTP requests for listing operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts, the public listing search.
//
// @Summary      Search listings
// @Tags         posts
// @Produce      json
// @Param        city      query     string  false  "City substring, case-insensitive"
// @Param        type      query     string  false  "Listing type (rent, buy, vacation)"
// @Param        property  query     string  false  "Property kind (apartment, house, condo, land)"
// @Param        bedroom   query     int     false  "Minimum bedrooms"
// @Param        bathroom  query     int     false  "Minimum bathrooms"
// @Param        minPrice  query     int     false  "Minimum price"
// @Param        maxPrice  query     int     false  "Maximum price"
// @Success      200       {array}   postResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	filter := ports.ListPostsFilter{
		City:     c.QueryParam("city"),
		Type:     c.QueryParam("type"),
		Property: c.QueryParam("property"),
		Bedroom:  queryInt(c, "bedroom"),
		Bathroom: queryInt(c, "bathroom"),
		MinPrice: int64(queryInt(c, "minPrice")),
		MaxPrice: int64(queryInt(c, "maxPrice")),
	}

	posts, err := h.service.ListPosts(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a listing by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postWithDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	pd, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostWithDetailResponse(pd))
}

// Create handles POST /api/posts. Requires an authenticated owner account.
//
// @Summary      Create a listing
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Listing details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), ident, toCreatePostInput(req))
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(post.Type).Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Update handles PUT /api/posts/:id. The caller must own the post; an
// absent post yields 404 before any ownership check.
//
// @Summary      Update a listing
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postWithDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pd, err := h.service.UpdatePost(c.Request().Context(), ident, c.Param("id"), toUpdatePostInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostWithDetailResponse(pd))
}

// Delete handles DELETE /api/posts/:id. Same auth rules as Update.
//
// @Summary      Delete a listing
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// queryInt parses an optional integer query parameter; 0 means absent.
func queryInt(c echo.Context, name string) int {
	v := c.QueryParam(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
