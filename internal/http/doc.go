// Package http provides optional HTTP adapters for hero slides.
//
// Public routes mount under /hero and render a carousel region as HTML, or
// as JSON when the request asks for it (?format=json or an application/json
// Accept header):
//   - Sections: /hero/{locale}/sections/{code}
//   - Service pages: /hero/{locale}/services/{kind}/{id}
//
// Admin routes mount under /admin/api:
//   - Hero sections: /hero-sections, /hero-sections/{id}
//   - Section slides: /hero-sections/{id}/slides, /hero-sections/{id}/slides/order
//   - Service slides: /services/{kind}/{id}/slides, /services/{kind}/{id}/slides/order
//   - Slides: /slides, /slides/{id}
//
// Host applications can register handlers on their own mux/router as needed.
package http
