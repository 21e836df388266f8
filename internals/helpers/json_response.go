package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Response envelopes
   Every reply is {success: bool, ...payload} or {success:false, message}.
=================================*/

// JsonError: flat failure body, no internal detail.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonOK: 200 with payload keys merged next to success.
func JsonOK(c *fiber.Ctx, payload fiber.Map) error {
	return jsonSuccess(c, fiber.StatusOK, payload)
}

// JsonCreated: 201 with payload keys merged next to success.
func JsonCreated(c *fiber.Ctx, payload fiber.Map) error {
	return jsonSuccess(c, fiber.StatusCreated, payload)
}

// JsonMessage: success body carrying only a message.
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return jsonSuccess(c, status, fiber.Map{"message": message})
}

func jsonSuccess(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

/* ===============================
   Paging resolver (query -> page/perPage/offset)
=================================*/

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= and ?per_page= (or the ?limit= alias the
// frontend sends) and normalizes them.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  offset,
		Limit:   perPage,
	}
}

// TotalPages = ceil(total / perPage); 0 when the collection is empty.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
