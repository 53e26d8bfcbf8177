package handler

import (
	"html/template"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// IndexData - данные для шаблона главной страницы
type IndexData struct {
	Title      string
	ExportPath string
}

// IndexHandler - рендеринг одностраничного UI продажи билетов
type IndexHandler struct {
	templates *template.Template
	data      IndexData
}

// NewIndexHandler загружает web/index.html из webDir
func NewIndexHandler(webDir string) (*IndexHandler, error) {
	tmpl, err := template.ParseFiles(filepath.Join(webDir, "index.html"))
	if err != nil {
		return nil, err
	}

	return &IndexHandler{
		templates: tmpl,
		data: IndexData{
			Title:      "Venta de Pasajes",
			ExportPath: "/export/csv",
		},
	}, nil
}

// RenderIndex godoc
// @Summary Ticket sales UI
// @Tags UI
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *IndexHandler) RenderIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "index.html", h.data)
}
