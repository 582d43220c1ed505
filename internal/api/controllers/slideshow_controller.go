package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"monastery/internal/models/request_models"
	"monastery/internal/slideshow"
	"monastery/pkg/utils"
)

type SlideshowController struct {
	slides *slideshow.SlideShow
}

func NewSlideshowController(slides *slideshow.SlideShow) *SlideshowController {
	return &SlideshowController{slides: slides}
}

// GetSlides godoc
// @Summary Hero slideshow state
// @Tags Slideshow
// @Produce json
// @Success 200 {object} utils.APIResponse{data=slideshow.State}
// @Failure 404 {object} utils.APIResponse
// @Router /api/slides [get]
func (s *SlideshowController) GetSlides(c *gin.Context) {
	if s.slides.Count() == 0 {
		utils.HandleServiceError(c, utils.ErrSlideshowEmpty)
		return
	}
	utils.RespondSuccess(c, s.slides.State(), "")
}

// NextSlide godoc
// @Summary Advance the slideshow
// @Tags Slideshow
// @Produce json
// @Success 200 {object} utils.APIResponse{data=slideshow.State}
// @Router /api/slides/next [post]
func (s *SlideshowController) NextSlide(c *gin.Context) {
	if s.slides.Count() == 0 {
		utils.HandleServiceError(c, utils.ErrSlideshowEmpty)
		return
	}
	utils.RespondSuccess(c, s.slides.Next(), "")
}

// PreviousSlide godoc
// @Summary Step the slideshow back
// @Tags Slideshow
// @Produce json
// @Success 200 {object} utils.APIResponse{data=slideshow.State}
// @Router /api/slides/previous [post]
func (s *SlideshowController) PreviousSlide(c *gin.Context) {
	if s.slides.Count() == 0 {
		utils.HandleServiceError(c, utils.ErrSlideshowEmpty)
		return
	}
	utils.RespondSuccess(c, s.slides.Previous(), "")
}

// ShowSlide godoc
// @Summary Jump to a slide
// @Tags Slideshow
// @Accept json
// @Produce json
// @Param request body request_models.SlideRequest true "Slide index"
// @Success 200 {object} utils.APIResponse{data=slideshow.State}
// @Router /api/slides/show [post]
func (s *SlideshowController) ShowSlide(c *gin.Context) {
	var req request_models.SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid slide index")
		return
	}
	if s.slides.Count() == 0 {
		utils.HandleServiceError(c, utils.ErrSlideshowEmpty)
		return
	}
	utils.RespondSuccess(c, s.slides.Show(req.Index), "")
}
