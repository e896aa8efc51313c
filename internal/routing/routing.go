// Package routing holds the site's fixed route table and the pure
// path -> view resolution used by the HTTP layer and the CLI.
package routing

import (
	"net/url"
	"strings"
)

// View identifies one page of the site.
type View string

const (
	ViewHome      View = "home"
	ViewAbout     View = "about"
	ViewPortfolio View = "portfolio"
	ViewServices  View = "services"
	ViewBlog      View = "blog"
	ViewBlogPost  View = "blog_post"
	ViewContact   View = "contact"
)

// Route binds a URL pattern to a view. Pattern uses gin syntax for parameters.
type Route struct {
	Pattern string
	View    View
	Title   string
	// InNav marks routes listed in the navigation bar.
	InNav bool
}

var table = []Route{
	{Pattern: "/", View: ViewHome, Title: "Home", InNav: true},
	{Pattern: "/about", View: ViewAbout, Title: "About", InNav: true},
	{Pattern: "/portfolio", View: ViewPortfolio, Title: "Portfolio", InNav: true},
	{Pattern: "/services", View: ViewServices, Title: "Services", InNav: true},
	{Pattern: "/blog", View: ViewBlog, Title: "Blog", InNav: true},
	{Pattern: "/blog/:id", View: ViewBlogPost, Title: "Blog Post"},
	{Pattern: "/contact", View: ViewContact, Title: "Contact", InNav: true},
}

// BlogListingPath is where unknown blog posts redirect to.
const BlogListingPath = "/blog"

// Routes returns a copy of the route table in registration order.
func Routes() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// NavRoutes returns the routes shown in the navigation bar.
func NavRoutes() []Route {
	var out []Route
	for _, r := range table {
		if r.InNav {
			out = append(out, r)
		}
	}
	return out
}

// Match is the result of resolving a path.
type Match struct {
	View View
	// ID is set only for ViewBlogPost.
	ID string
}

// Resolve maps a request path to exactly one view. A single trailing slash is
// ignored. It reports false for paths outside the table.
func Resolve(path string) (Match, bool) {
	if path == "" {
		return Match{}, false
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	for _, r := range table {
		prefix, _, ok := strings.Cut(r.Pattern, ":")
		if !ok {
			if path == r.Pattern {
				return Match{View: r.View}, true
			}
			continue
		}
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		id := strings.TrimPrefix(path, prefix)
		if id == "" || strings.Contains(id, "/") {
			continue
		}
		return Match{View: r.View, ID: id}, true
	}
	return Match{}, false
}

// PathFor builds the concrete path for a view. id is used only by ViewBlogPost.
func PathFor(v View, id string) string {
	for _, r := range table {
		if r.View != v {
			continue
		}
		if prefix, _, ok := strings.Cut(r.Pattern, ":"); ok {
			return prefix + id
		}
		return r.Pattern
	}
	return "/"
}

// IsLocalPath reports whether p is a same-site absolute path, safe to redirect to.
// Control characters are rejected outright: browsers strip tab and newline
// from URLs, which would turn "/\t/host" into "//host".
func IsLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return false
	}
	for _, r := range p {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme == "" && u.Host == ""
}
