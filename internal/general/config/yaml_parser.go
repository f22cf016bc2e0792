package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseYAML parses the specific two-level mapping used by config.yaml
func parseYAML(r io.Reader, cfg *Config) error {
	type section int
	const (
		none section = iota
		srv
		nav
		ws
	)

	scanner := bufio.NewScanner(r)
	var cur section

	lineNo := 0
	seenTop := map[section]bool{}

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		// strip comments
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}

		line := strings.TrimRight(raw, " \t\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// top-level section? (no leading spaces)
		if len(line) > 0 && (line[0] != ' ' && line[0] != '\t') {
			switch strings.TrimSpace(line) {
			case "server:":
				cur = srv
				if seenTop[srv] {
					return fmt.Errorf("line %d: duplicate 'server' section", lineNo)
				}
				seenTop[srv] = true
			case "navigation:":
				cur = nav
				if seenTop[nav] {
					return fmt.Errorf("line %d: duplicate 'navigation' section", lineNo)
				}
				seenTop[nav] = true
			case "websocket:":
				cur = ws
				if seenTop[ws] {
					return fmt.Errorf("line %d: duplicate 'websocket' section", lineNo)
				}
				seenTop[ws] = true
			default:
				return fmt.Errorf("line %d: unknown top-level key %q", lineNo, strings.TrimSuffix(strings.TrimSpace(line), ":"))
			}
			continue
		}

		// expect indented "key: value"
		if cur == none {
			return fmt.Errorf("line %d: key without a section", lineNo)
		}
		trim := strings.TrimSpace(line)
		colon := strings.IndexByte(trim, ':')
		if colon <= 0 {
			return fmt.Errorf("line %d: expected 'key: value'", lineNo)
		}
		key := strings.TrimSpace(trim[:colon])
		val := strings.TrimLeft(strings.TrimSpace(trim[colon+1:]), " \t")

		switch cur {
		case srv:
			switch key {
			case "port":
				p, err := strconv.Atoi(resolveScalar(val))
				if err != nil {
					return fmt.Errorf("line %d: server.port must be int: %v", lineNo, err)
				}
				cfg.Server.Port = p
			default:
				return fmt.Errorf("line %d: unknown key in server: %q", lineNo, key)
			}
		case nav:
			switch key {
			case "speed_kmh":
				s, err := strconv.ParseFloat(resolveScalar(val), 64)
				if err != nil {
					return fmt.Errorf("line %d: navigation.speed_kmh must be a number: %v", lineNo, err)
				}
				cfg.Navigation.SpeedKMH = s
			case "step_interval_seconds":
				s, err := strconv.Atoi(resolveScalar(val))
				if err != nil {
					return fmt.Errorf("line %d: navigation.step_interval_seconds must be int: %v", lineNo, err)
				}
				cfg.Navigation.StepIntervalSeconds = s
			default:
				return fmt.Errorf("line %d: unknown key in navigation: %q", lineNo, key)
			}
		case ws:
			switch key {
			case "ping_interval_seconds":
				p, err := strconv.Atoi(resolveScalar(val))
				if err != nil {
					return fmt.Errorf("line %d: websocket.ping_interval_seconds must be int: %v", lineNo, err)
				}
				cfg.WebSocket.PingIntervalSeconds = p
			default:
				return fmt.Errorf("line %d: unknown key in websocket: %q", lineNo, key)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	return nil
}

// resolveScalar trims whitespace and removes surrounding quotes from
// YAML-like scalars, so quoted values are not stored with extra quotes.
func resolveScalar(s string) string {
	s = strings.TrimSpace(s)

	// if value is quoted with "..." or '...', remove quotes safely
	n := len(s)
	if n >= 2 {
		if (s[0] == '"' && s[n-1] == '"') || (s[0] == '\'' && s[n-1] == '\'') {
			if unq, err := strconv.Unquote(s); err == nil {
				return unq
			}
			// fallback if strconv.Unquote fails (e.g., mismatched quotes)
			return s[1 : n-1]
		}
	}

	return s
}
