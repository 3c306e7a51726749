package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var (
	ErrNoRoles       = errors.New("protected endpoint declares no roles")
	ErrDuplicateRule = errors.New("endpoint declared twice")
	ErrBadMethod     = errors.New("unknown http method")
)

var methods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// Permission describes who may call one route pattern. Skip marks the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return p.Skip || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions looks up a route pattern; ok is false when the route is not declared.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	if r.index == nil {
		r.buildIndex()
	}

	permission, ok := r.index[key(path, method)]

	return permission, ok
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))
	for _, endpoint := range r.Endpoints {
		r.index[key(endpoint.Path, endpoint.Method)] = endpoint
	}
}

// Load decodes and checks a permissions document.
func Load(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		k := key(endpoint.Path, endpoint.Method)

		switch {
		case !slices.Contains(methods, strings.ToUpper(endpoint.Method)):
			return nil, fmt.Errorf("%w: %s", ErrBadMethod, k)
		case !endpoint.Skip && len(endpoint.Permissions) == 0:
			return nil, fmt.Errorf("%w: %s", ErrNoRoles, k)
		}

		if _, ok := seen[k]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, k)
		}

		seen[k] = struct{}{}
	}

	permissions.buildIndex()

	return &permissions, nil
}

// Get returns the embedded route table. A broken table stops the process.
func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
