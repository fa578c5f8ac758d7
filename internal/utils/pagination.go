// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationQuery adalah parameter page/limit yang sudah dibersihkan dan siap
// dipakai untuk LIMIT/OFFSET.
type PaginationQuery struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePaginationParams membaca ?page= dan ?limit=. Nilai tidak valid diganti default,
// limit dibatasi MaxLimit.
func ParsePaginationParams(c *fiber.Ctx) PaginationQuery {
	page := queryPositiveInt(c, "page", DefaultPage)
	limit := queryPositiveInt(c, "limit", DefaultLimit)
	if limit > MaxLimit {
		zlog.Warn().Int("requested_limit", limit).Int("max_limit", MaxLimit).Msg("Requested 'limit' exceeds maximum allowed, capping")
		limit = MaxLimit
	}
	return NewPaginationQuery(page, limit)
}

// NewPaginationQuery menghitung offset dari page dan limit.
func NewPaginationQuery(page, limit int) PaginationQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return PaginationQuery{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func queryPositiveInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		zlog.Warn().Str("query_param", key).Str("value", raw).Int("default", def).Msg("Invalid query parameter, using default")
		return def
	}
	return n
}

// PaginationMeta dikirim bersama data agar frontend bisa membangun navigasi halaman.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

func BuildPaginationMeta(totalItems, limit, page int) PaginationMeta {
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	currentPage := page
	switch {
	case totalPages > 0 && currentPage > totalPages:
		currentPage = totalPages
	case totalPages == 0:
		currentPage = 1
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PerPage:     limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// PaginatedResponse membungkus satu halaman data beserta metadatanya.
type PaginatedResponse[T any] struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []T            `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// NewPaginatedResponse memastikan Data tidak nil agar JSON berisi [] dan bukan null.
func NewPaginatedResponse[T any](message string, data []T, meta PaginationMeta) PaginatedResponse[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return PaginatedResponse[T]{Success: true, Message: message, Data: data, Meta: meta}
}

// PaginatedResponseGeneric hanya untuk anotasi Swagger (swag belum mendukung generics).
type PaginatedResponseGeneric struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []interface{}  `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
