package handler

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"hashnotes/internal/service"
)

const (
	indexTitle       = "Hashnotes"
	indexDescription = "The easy way to share text online"
	editTitle        = "Edit"
	defaultTitle     = "Note"
)

// Index renders the landing page.
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title":       indexTitle,
			"Description": indexDescription,
		})
	}
}

// EditNote renders the edit form, prefilled with the note named in the path if any.
// @Summary Edit form
// @Tags notes
// @Produce html
// @Param name path string false "Note digest to prefill"
// @Success 200 {string} string "HTML form"
// @Failure 404 {object} errorPayload
// @Router /edit/{name} [get]
func EditNote(svc service.NoteService, maxLength int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content := ""
		if name := utils.CopyString(c.Params("name")); name != "" {
			note, err := svc.Get(c.UserContext(), name)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "note not found")
				}
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
			content = note.Content
		}
		return c.Render("edit", fiber.Map{
			"Title":     editTitle,
			"Content":   content,
			"MaxLength": maxLength,
		})
	}
}

// SubmitNote stores the submitted content and redirects to its digest.
// The name in the path, if any, is ignored: content alone decides the note.
// @Summary Submit a note
// @Tags notes
// @Accept x-www-form-urlencoded
// @Param content formData string true "Markdown source"
// @Success 302 "Redirect to /{digest}"
// @Failure 400 {object} errorPayload
// @Router /edit/ [post]
func SubmitNote(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, ok := formContent(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "CONTENT_REQUIRED", "content is required")
		}

		note, err := svc.Create(c.UserContext(), content)
		if err != nil {
			if errors.Is(err, service.ErrInvalidContent) {
				return writeError(c, fiber.StatusBadRequest, "CONTENT_TOO_LONG", "content is too long")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect("/"+note.Digest, fiber.StatusFound)
	}
}

// ViewNote renders a stored note as HTML.
// @Summary View a note
// @Tags notes
// @Produce html
// @Param name path string true "Note digest"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} errorPayload
// @Router /{name} [get]
func ViewNote(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := svc.Render(c.UserContext(), utils.CopyString(c.Params("name")))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "note not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		title := note.Title
		if title == "" {
			title = defaultTitle
		}
		return c.Render("view", fiber.Map{
			"Title":       title,
			"Description": note.Description,
			"Digest":      note.Digest,
			// Rendered by goldmark with raw HTML disabled.
			"Content": template.HTML(note.HTML),
			"TOC":     template.HTML(note.TOC),
		})
	}
}

// formContent reads the "content" field from a urlencoded or multipart body.
// The bool is false when the field is absent altogether.
func formContent(c *fiber.Ctx) (string, bool) {
	if args := c.Request().PostArgs(); args.Has("content") {
		return string(args.Peek("content")), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if v, ok := form.Value["content"]; ok && len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}
