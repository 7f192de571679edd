package controllers

import (
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/api/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the category"
// @Router			/api/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	if r := co.Categories.GetCategoryByID(c.Request.Context(), id); !r.Success() {
		c.JSON(r.Status, r.Error)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List categories
// @Description	Returns all categories
// @Tags			Categories
// @Produce		json
// @Success		200	{array}	services.CategoryDTO
// @Router			/api/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	respond(c, co.Categories.GetAllCategories(c.Request.Context()))
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	services.CategoryDTO
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the category"
// @Router			/api/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	respond(c, co.Categories.GetCategoryByID(c.Request.Context(), id))
}

// @Summary		Create category
// @Description	Creates a new category. The id in the body is ignored.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	services.CategoryDTO
// @Failure		400			{object}	apierror.ErrorMessage
// @Param			category	body		services.CategoryDTO	true	"Category"
// @Router			/api/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var dto services.CategoryDTO
	if err := httputil.BindData(c, &dto); err != nil {
		invalidBody(c)
		return
	}

	r := co.Categories.AddCategory(c.Request.Context(), dto)
	if r.Success() {
		c.Header("Location", c.Request.URL.Path+"/"+itoa(r.Data.ID))
	}
	respond(c, r)
}

// @Summary		Update category
// @Description	Updates the name and budget of an existing category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	services.CategoryDTO
// @Failure		400			{object}	apierror.ErrorMessage
// @Failure		404			{object}	apierror.ErrorMessage
// @Param			id			path		uint					true	"ID of the category"
// @Param			category	body		services.CategoryDTO	true	"Category"
// @Router			/api/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	var dto services.CategoryDTO
	if err := httputil.BindData(c, &dto); err != nil {
		invalidBody(c)
		return
	}

	// The id always comes from the path, not the body
	dto.ID = id
	respond(c, co.Categories.UpdateCategory(c.Request.Context(), dto))
}

// @Summary		Delete category
// @Description	Deletes a category. Categories that still own expenses cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the category"
// @Router			/api/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	respond(c, co.Categories.DeleteCategory(c.Request.Context(), id))
}
