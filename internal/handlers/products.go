package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comerciotech/internal/models"
	"comerciotech/internal/service"
)

func ListProducts(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /productos"
		defer handlePanic(c, route)

		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /productos"
		defer handlePanic(c, route)

		var in models.ProductInput
		if err := decodeJSON(c, &in); err != nil {
			respondWithError(c, route, err)
			return
		}

		product, err := svc.CreateProduct(c.Request.Context(), in)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func GetProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /productos/:id"
		defer handlePanic(c, route)

		product, err := svc.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func UpdateProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /productos/:id"
		defer handlePanic(c, route)

		var patch models.ProductPatch
		if err := decodeJSON(c, &patch); err != nil {
			respondWithError(c, route, err)
			return
		}

		product, err := svc.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /productos/:id"
		defer handlePanic(c, route)

		msg, err := svc.DeleteProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, messageResponse{Message: msg})
	}
}
