package services

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"tally/internal/config"
	apperrors "tally/internal/errors"
)

// decimalModulePath is the arithmetic library whose version is gated.
// Summation semantics have changed across its releases, so running below the
// pinned minimum risks silently different totals.
const decimalModulePath = "github.com/shopspring/decimal"

type environmentService struct {
	cfg config.RuntimeConfig
}

// NewEnvironmentService creates a new EnvironmentServiceInterface instance
func NewEnvironmentService(cfg config.RuntimeConfig) EnvironmentServiceInterface {
	return &environmentService{cfg: cfg}
}

// CheckEnvironment verifies the Go runtime and the decimal module against the
// configured minimums. It runs before any input is read so a mismatch can
// never produce partial output.
func (s *environmentService) CheckEnvironment() error {
	current := runtime.Version()
	if ok, comparable := versionAtLeast(current, s.cfg.MinGoVersion); comparable && !ok {
		return apperrors.NewRunError(apperrors.EnvGoVersionTooOld,
			apperrors.WithDetails(fmt.Sprintf("have %s, need at least %s", current, s.cfg.MinGoVersion)))
	}

	version, found := decimalVersion()
	if !found {
		// Binaries stripped of module info (some test builds) cannot be
		// checked; treat that as satisfying the gate rather than failing
		// every such run.
		return nil
	}
	if ok, comparable := versionAtLeast(version, s.cfg.MinDecimalVersion); comparable && !ok {
		return apperrors.NewRunError(apperrors.EnvDecimalVersionTooOld,
			apperrors.WithDetails(fmt.Sprintf("have %s %s, need at least %s", decimalModulePath, version, s.cfg.MinDecimalVersion)))
	}

	return nil
}

// decimalVersion reports the decimal module version baked into the binary.
func decimalVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range info.Deps {
		if dep.Path != decimalModulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version, true
		}
		return dep.Version, true
	}
	return "", false
}

// versionAtLeast compares two dotted version strings such as "go1.22.3" or
// "v1.4.0". The second return value is false when either side cannot be
// parsed numerically (e.g. a devel toolchain or a pseudo-version), in which
// case the comparison result is meaningless and callers should skip the gate.
func versionAtLeast(current, minimum string) (ok bool, comparable bool) {
	cur, curOK := parseVersionParts(current)
	floor, floorOK := parseVersionParts(minimum)
	if !curOK || !floorOK {
		return false, false
	}

	for i := 0; i < len(cur) || i < len(floor); i++ {
		var c, m int
		if i < len(cur) {
			c = cur[i]
		}
		if i < len(floor) {
			m = floor[i]
		}
		if c != m {
			return c > m, true
		}
	}
	return true, true
}

// parseVersionParts strips a "go" or "v" prefix and splits the remainder into
// numeric components.
func parseVersionParts(version string) ([]int, bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(version, "go"), "v")
	if trimmed == "" {
		return nil, false
	}

	fields := strings.Split(trimmed, ".")
	parts := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
