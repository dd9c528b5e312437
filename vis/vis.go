// Package vis is the facade collaborators use instead of wiring GMOD,
// Locations, Codebooks, and the versioning engine by hand: a per-process,
// per-VisVersion cache of immutable artefacts built from a resource
// Loader, plus convenience conversions.
package vis

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/dto"
	"github.com/dnv-opensource/vista-sdk-sub000/internal/resource"
	"github.com/dnv-opensource/vista-sdk-sub000/localid"
	"github.com/dnv-opensource/vista-sdk-sub000/location"
	"github.com/dnv-opensource/vista-sdk-sub000/versioning"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// artifacts bundles the three per-version immutable collaborators.
type artifacts struct {
	gmod      *gmod.Gmod
	locations *location.Locations
	codebooks *codebook.Codebooks
}

// Client is the VIS facade. Safe for concurrent use: two concurrent
// first-time requests for the same VisVersion share one build via
// singleflight rather than racing or double-building.
type Client struct {
	loader resource.Loader

	mu    sync.RWMutex
	cache map[visversion.VisVersion]*artifacts
	sf    singleflight.Group

	engineMu sync.Mutex
	engine   *versioning.Engine
}

// Option configures a Client at construction time.
type Option func(*Client)

// NewClient builds a Client over loader.
func NewClient(loader resource.Loader, opts ...Option) *Client {
	c := &Client{loader: loader, cache: make(map[visversion.VisVersion]*artifacts)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(v visversion.VisVersion) (*artifacts, error) {
	c.mu.RLock()
	a, ok := c.cache[v]
	c.mu.RUnlock()
	if ok {
		return a, nil
	}

	result, err, _ := c.sf.Do(v.String(), func() (interface{}, error) {
		c.mu.RLock()
		if a, ok := c.cache[v]; ok {
			c.mu.RUnlock()
			return a, nil
		}
		c.mu.RUnlock()

		built, err := c.build(v)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[v] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*artifacts), nil
}

func (c *Client) build(v visversion.VisVersion) (*artifacts, error) {
	gmodRaw, err := resource.ReadAll(c.loader, v, resource.KindGmod)
	if err != nil {
		return nil, err
	}
	gmodDto, err := dto.DecodeGmod(gmodRaw)
	if err != nil {
		return nil, err
	}
	g, err := gmod.Build(v, gmodDto)
	if err != nil {
		return nil, err
	}

	locRaw, err := resource.ReadAll(c.loader, v, resource.KindLocations)
	if err != nil {
		return nil, err
	}
	locDto, err := dto.DecodeLocations(locRaw)
	if err != nil {
		return nil, err
	}
	entries := make([]location.Entry, len(locDto.Items))
	for i, item := range locDto.Items {
		e := location.Entry{Name: item.Name}
		if len(item.Code) > 0 {
			e.Code = item.Code[0]
		}
		if item.Definition != nil {
			e.Definition = *item.Definition
		}
		entries[i] = e
	}
	locs := location.NewLocations(v, entries)

	cbRaw, err := resource.ReadAll(c.loader, v, resource.KindCodebooks)
	if err != nil {
		return nil, err
	}
	cbDto, err := dto.DecodeCodebooks(cbRaw)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]map[string][]string, len(cbDto.Items))
	for _, item := range cbDto.Items {
		raw[item.Name] = item.Values
	}
	cbs, err := codebook.NewCodebooks(v, raw)
	if err != nil {
		return nil, err
	}

	return &artifacts{gmod: g, locations: locs, codebooks: cbs}, nil
}

// Gmod returns the GMOD graph for v, building and caching it on first use.
func (c *Client) Gmod(v visversion.VisVersion) (*gmod.Gmod, error) {
	a, err := c.get(v)
	if err != nil {
		return nil, err
	}
	return a.gmod, nil
}

// Locations returns the Locations collaborator for v.
func (c *Client) Locations(v visversion.VisVersion) (*location.Locations, error) {
	a, err := c.get(v)
	if err != nil {
		return nil, err
	}
	return a.locations, nil
}

// Codebooks returns the Codebooks collection for v.
func (c *Client) Codebooks(v visversion.VisVersion) (*codebook.Codebooks, error) {
	a, err := c.get(v)
	if err != nil {
		return nil, err
	}
	return a.codebooks, nil
}

// ParsePath parses s as a short-form GmodPath against v's graph.
func (c *Client) ParsePath(s string, v visversion.VisVersion) (*gmodpath.GmodPath, error) {
	a, err := c.get(v)
	if err != nil {
		return nil, err
	}
	return gmodpath.Parse(s, a.gmod, a.locations)
}

// ParseLocalId parses s as a LocalId, resolving its declared VIS version
// through this client.
func (c *Client) ParseLocalId(s string) (*localid.LocalId, []localid.ParseError, error) {
	segs := splitFirstTwo(s)
	if segs == nil {
		return nil, nil, fmt.Errorf("vis: %q is not a well-formed LocalId string", s)
	}
	v, err := visversion.Parse(segs)
	if err != nil {
		return nil, nil, err
	}
	a, err := c.get(v)
	if err != nil {
		return nil, nil, err
	}
	id, errs, ok := localid.Parse(s, a.gmod, a.locations, a.codebooks)
	if !ok {
		return nil, errs, nil
	}
	return id, errs, nil
}

func splitFirstTwo(s string) string {
	const prefix = "/dnv-v2/vis-"
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return ""
	}
	rest := s[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' {
			return rest[:i]
		}
	}
	return rest
}

// engineFor lazily builds the versioning engine spanning every release
// between the oldest and the latest, loading each step's rule table and
// every version's graph on first use.
func (c *Client) engineFor() (*versioning.Engine, error) {
	c.engineMu.Lock()
	defer c.engineMu.Unlock()
	if c.engine != nil {
		return c.engine, nil
	}

	graphs := make(map[visversion.VisVersion]*gmod.Gmod)
	steps := make(map[visversion.VisVersion]*dto.VersioningDto)
	for _, v := range visversion.All() {
		a, err := c.get(v)
		if err != nil {
			return nil, err
		}
		graphs[v] = a.gmod

		raw, err := resource.ReadAll(c.loader, v, resource.KindGmodVersioning)
		if err != nil {
			continue // no rule table into this version (e.g. the oldest release)
		}
		verDto, err := dto.DecodeVersioning(raw)
		if err != nil {
			return nil, err
		}
		steps[v] = verDto
	}

	engine, err := versioning.NewEngine(graphs, steps)
	if err != nil {
		return nil, err
	}
	c.engine = engine
	return engine, nil
}

// ConvertPath converts p to vtgt using the lazily-built versioning engine
// (a supplemented convenience wrapping versioning.Engine.ConvertPath, per
// the Python SDK's VIS.convert_path).
func (c *Client) ConvertPath(p *gmodpath.GmodPath, vtgt visversion.VisVersion) (*gmodpath.GmodPath, bool, error) {
	engine, err := c.engineFor()
	if err != nil {
		return nil, false, err
	}
	return engine.ConvertPath(p.VisVersion(), p, vtgt)
}

// ConvertLocalId converts l to vtgt using the lazily-built versioning
// engine (a supplemented convenience wrapping
// versioning.Engine.ConvertLocalId, per the Python SDK's
// VIS.convert_local_id).
func (c *Client) ConvertLocalId(l *localid.LocalId, vtgt visversion.VisVersion) (*localid.LocalId, bool, error) {
	engine, err := c.engineFor()
	if err != nil {
		return nil, false, err
	}
	return engine.ConvertLocalId(l, vtgt)
}
