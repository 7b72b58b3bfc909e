package blueprintapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-editor/api/identity"
	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/beka-birhanu/maze-editor/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlueprintController serves the maze editing routes.
type BlueprintController struct {
	editor i.Editor
}

// NewBlueprintController initializes a BlueprintController.
func NewBlueprintController(editor i.Editor) *BlueprintController {
	return &BlueprintController{
		editor: editor,
	}
}

// RegisterPublic registers public routes.
func (bc *BlueprintController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (bc *BlueprintController) RegisterProtected(route *gin.RouterGroup) {
	blueprints := route.Group("/blueprints")
	{
		blueprints.POST("", bc.create)
		blueprints.GET("", bc.list)
		blueprints.GET("/:ID", bc.get)
		blueprints.GET("/:ID/ascii", bc.ascii)
		blueprints.PUT("/:ID/walls", bc.setWall)
		blueprints.POST("/:ID/walls/toggle", bc.toggleWall)
		blueprints.POST("/:ID/resize", bc.resize)
		blueprints.DELETE("/:ID", bc.delete)
	}
}

func (bc *BlueprintController) create(ctx *gin.Context) {
	authorID, ok := bc.author(ctx)
	if !ok {
		return
	}

	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dimensions := maze.Dimensions{Width: request.Width, Height: request.Height}
	blueprint, err := bc.editor.Create(ctx, authorID, request.Name, dimensions, request.Generate)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, blueprint)
}

func (bc *BlueprintController) list(ctx *gin.Context) {
	authorID, ok := bc.author(ctx)
	if !ok {
		return
	}

	blueprints, err := bc.editor.List(ctx, authorID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	response := make([]SummaryResponse, 0, len(blueprints))
	for _, b := range blueprints {
		response = append(response, newSummaryResponse(b))
	}
	ctx.JSON(http.StatusOK, response)
}

func (bc *BlueprintController) get(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	blueprint, err := bc.editor.Get(ctx, authorID, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, blueprint)
}

func (bc *BlueprintController) ascii(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	blueprint, err := bc.editor.Get(ctx, authorID, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, blueprint.Maze.String())
}

func (bc *BlueprintController) setWall(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	request, side, ok := bindWall(ctx)
	if !ok {
		return
	}
	if request.Value == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	blueprint, err := bc.editor.SetWall(ctx, authorID, id, *request.X, *request.Y, side, *request.Value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, blueprint)
}

func (bc *BlueprintController) toggleWall(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	request, side, ok := bindWall(ctx)
	if !ok {
		return
	}

	blueprint, err := bc.editor.ToggleWall(ctx, authorID, id, *request.X, *request.Y, side)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, blueprint)
}

func (bc *BlueprintController) resize(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	var request ResizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	edge, err := maze.ParseEdge(request.Edge)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	axis, err := maze.ParseAxis(request.Axis)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	blueprint, err := bc.editor.Resize(ctx, authorID, id, edge, axis, request.Count)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, blueprint)
}

func (bc *BlueprintController) delete(ctx *gin.Context) {
	authorID, id, ok := bc.target(ctx)
	if !ok {
		return
	}

	if err := bc.editor.Delete(ctx, authorID, id); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// author reads the signed-in author, answering 401 when it is missing.
func (bc *BlueprintController) author(ctx *gin.Context) (uuid.UUID, bool) {
	authorID, err := identity.AuthorID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return authorID, true
}

// target reads the signed-in author and the blueprint ID from the path.
func (bc *BlueprintController) target(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	authorID, ok := bc.author(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid blueprint id"})
		return uuid.Nil, uuid.Nil, false
	}
	return authorID, id, true
}

func bindWall(ctx *gin.Context) (*WallRequest, maze.Side, bool) {
	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, false
	}

	side, err := maze.ParseSide(request.Side)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, false
	}
	return &request, side, true
}

func respond(ctx *gin.Context, status int, blueprint *domain.Blueprint) {
	response, err := newBlueprintResponse(blueprint)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(status, response)
}

// abortWithError maps service and maze errors to HTTP statuses.
func abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrUnknownSide),
		errors.Is(err, maze.ErrInvalidResize),
		errors.Is(err, domain.ErrDimensionOutOfRange),
		errors.Is(err, domain.ErrInvalidName):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrBlueprintNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrEditConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "unexpected error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
