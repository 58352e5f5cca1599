package handlers

import (
	"encoding/xml"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"tactify-cms/helper"
	"tactify-cms/services"
	"tactify-cms/storage"
)

const postersPerPage = 20

const robotsTxt = "User-agent: *\nAllow: /\nSitemap: /sitemap.xml\n"

// SiteHandler serves the public browsing surface.
type SiteHandler struct {
	posters services.PosterService
	trivias services.TriviaService
	store   *storage.FileStore
}

func NewSiteHandler(posters services.PosterService, trivias services.TriviaService, store *storage.FileStore) *SiteHandler {
	return &SiteHandler{posters: posters, trivias: trivias, store: store}
}

// Index is the home page: newest posters, 20 per page. An empty
// catalog renders the page with no entries rather than an error.
func (h *SiteHandler) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	posts, total, err := h.posters.List(page, postersPerPage)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Posters not available"})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts":  posts,
		"Paging": helper.GeneratePaging(page, postersPerPage, total),
	})
}

func (h *SiteHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{})
}

func (h *SiteHandler) PosterArchive(c *gin.Context) {
	posts, err := h.posters.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Posters not available"})
		return
	}
	c.HTML(http.StatusOK, "postarchive.html", gin.H{"Posts": posts})
}

func (h *SiteHandler) TriviaArchive(c *gin.Context) {
	trivias, err := h.trivias.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Trivia not available"})
		return
	}
	c.HTML(http.StatusOK, "triviaarchive.html", gin.H{"Trivias": trivias})
}

func (h *SiteHandler) PosterDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not present"})
		return
	}

	post, err := h.posters.GetByID(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not present"})
		return
	}

	related, _ := h.posters.RandomSample(5)
	c.HTML(http.StatusOK, "post.html", gin.H{
		"Post":    post,
		"Body":    template.HTML(post.Body),
		"Related": related,
	})
}

func (h *SiteHandler) TriviaDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Trivia not present"})
		return
	}

	trivia, err := h.trivias.GetByID(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Trivia not present"})
		return
	}

	related, _ := h.trivias.RandomSample(5)
	c.HTML(http.StatusOK, "trivia.html", gin.H{
		"Trivia":  trivia,
		"Body":    template.HTML(trivia.Body),
		"Related": related,
	})
}

// DownloadFile serves an uploaded artifact by its stored name. The
// name is sanitized again so the route cannot escape the upload root.
func (h *SiteHandler) DownloadFile(c *gin.Context) {
	name := h.store.Sanitize(c.Param("filename"))
	if name == "" {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "File not present"})
		return
	}

	path := filepath.Join(h.store.Root(), name)
	if !h.store.IsRegularFile(path) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "File not present"})
		return
	}

	c.File(path)
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the home page plus every poster with its last-modified
// stamp.
func (h *SiteHandler) Sitemap(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}},
	}

	posts, err := h.posters.ListAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/post/%d/%s", base, post.ID, url.PathEscape(post.Header)),
			LastMod: post.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}

func (h *SiteHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, robotsTxt)
}
