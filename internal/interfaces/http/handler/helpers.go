package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/spacatalog/backend/internal/interfaces/http/dto"
)

// bindFilter binds common list query parameters into a repository filter
func bindFilter(c *gin.Context) (shared.Filter, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}, nil
}

// parseItemRef parses the owner kind and id path parameters into an item
// reference
func parseItemRef(c *gin.Context) (catalog.ItemRef, error) {
	kind := catalog.ItemKind(c.Param("kind"))
	if !kind.IsValid() {
		return catalog.ItemRef{}, errors.New("invalid item kind")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return catalog.ItemRef{}, errors.New("invalid item ID format")
	}
	return catalog.NewItemRef(kind, id), nil
}

// parseContextKind parses the ordering context kind path parameter
func parseContextKind(c *gin.Context) (catalog.ContextKind, error) {
	kind := catalog.ContextKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", errors.New("invalid context kind")
	}
	return kind, nil
}

// parseFilterKind parses the filter taxonomy kind path parameter
func parseFilterKind(c *gin.Context) (catalog.FilterKind, error) {
	kind := catalog.FilterKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", errors.New("invalid filter kind")
	}
	return kind, nil
}
