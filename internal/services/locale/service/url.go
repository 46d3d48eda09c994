package service

import (
	"context"
	"strings"
)

// segmentOf returns the sub-path segment of a domain-table name,
// "" when the name carries none ("example.com/fr" yields "fr")
func segmentOf(name string) string {
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return strings.Trim(name[i+1:], "/")
	}
	return ""
}

// URLWithCulture implements domain.NegotiatorPort. The culture's domain
// sub-path segment is prefixed onto contentPath unless already present;
// cultures with no sub-path domain leave the path untouched
func (s *Service) URLWithCulture(ctx context.Context, contentPath, culture string) string {
	if culture == "" {
		return contentPath
	}

	seg := ""
	for _, d := range s.table.All(ctx) {
		if d.Culture != "" && strings.EqualFold(d.Culture, culture) {
			seg = segmentOf(d.Name)
			break
		}
	}
	if seg == "" {
		return contentPath
	}

	parts := pathSegments(contentPath)
	if len(parts) > 0 && strings.EqualFold(parts[0], seg) {
		return contentPath
	}
	if contentPath == "" || contentPath == "/" {
		return "/" + seg
	}
	if !strings.HasPrefix(contentPath, "/") {
		contentPath = "/" + contentPath
	}
	return "/" + seg + contentPath
}
