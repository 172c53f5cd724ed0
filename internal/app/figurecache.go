package app

import (
	"bytes"
	"sync"

	"golang.org/x/sync/singleflight"

	"pubguide/internal/charts"
	"pubguide/internal/content"
	"pubguide/internal/guide"
)

// figureCache holds rendered figure bytes per (name, format, caption).
// Concurrent first requests for the same figure share one render.
type figureCache struct {
	group singleflight.Group
	mu    sync.RWMutex
	items map[string][]byte
}

func newFigureCache() *figureCache {
	return &figureCache{items: make(map[string][]byte)}
}

// get renders name in format. The caption is stamped onto PNG output only.
func (c *figureCache) get(name string, format charts.Format, caption string) ([]byte, error) {
	key := name + "." + string(format)
	if format == charts.FormatPNG {
		key += "\x00" + caption
	}

	c.mu.RLock()
	data, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		fig, err := charts.Build(name)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if format == charts.FormatPNG {
			err = fig.RenderCaptionedPNG(&buf, caption)
		} else {
			err = fig.Render(&buf, format)
		}
		if err != nil {
			return nil, err
		}
		out := buf.Bytes()
		c.mu.Lock()
		c.items[key] = out
		c.mu.Unlock()
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// captionIndex knows the caption of every figure placement, keyed by page
// slug, and falls back to a figure's first placement.
type captionIndex struct {
	placed map[string]string
	first  map[string]string
}

func newCaptionIndex(lib *content.Library) captionIndex {
	idx := captionIndex{placed: make(map[string]string), first: make(map[string]string)}
	for _, id := range guide.Pages() {
		page, err := lib.Page(string(id))
		if err != nil {
			continue
		}
		slug := guide.Slug(id)
		for _, b := range page.Blocks {
			if b.Figure == nil {
				continue
			}
			if _, ok := idx.placed[slug+"/"+b.Figure.Name]; !ok {
				idx.placed[slug+"/"+b.Figure.Name] = b.Figure.Caption
			}
			if _, ok := idx.first[b.Figure.Name]; !ok {
				idx.first[b.Figure.Name] = b.Figure.Caption
			}
		}
	}
	return idx
}

func (c captionIndex) lookup(pageSlug, figure string) string {
	if caption, ok := c.placed[pageSlug+"/"+figure]; ok {
		return caption
	}
	return c.first[figure]
}
