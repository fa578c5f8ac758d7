// internal/seed/catalog.go
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog adalah data awal yang ditulis prosedur seeding.
type Catalog struct {
	YearFrom     int                `yaml:"year_from"`
	Users        []UserEntry        `yaml:"users"`
	Destinations []DestinationEntry `yaml:"destinations"`
	Categories   []string           `yaml:"categories"`
	Countries    []CountryEntry     `yaml:"countries"`
	Settings     SettingsEntry      `yaml:"settings"`
}

type UserEntry struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password,omitempty"` // Kosong = SEED_DEFAULT_PASSWORD.
	Role     string `yaml:"role"`
	Avatar   string `yaml:"avatar,omitempty"`
	// AssignedLocations berisi NAMA destinasi, bukan id; diselesaikan saat seeding.
	AssignedLocations []string `yaml:"assigned_locations,omitempty"`
}

type DestinationEntry struct {
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	ManagementType string `yaml:"management_type"`
	Location       string `yaml:"location"`
	Status         string `yaml:"status"`
}

type CountryEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type SettingsEntry struct {
	AppName    string `yaml:"app_name"`
	Subtitle   string `yaml:"subtitle"`
	FooterText string `yaml:"footer_text"`
}

// Load membaca katalog dari path; path kosong memakai katalog bawaan.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed catalog %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse men-decode YAML dan memvalidasi isinya.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) normalize() {
	for i := range c.Users {
		u := &c.Users[i]
		u.Email = strings.ToLower(strings.TrimSpace(u.Email))
		u.Role = strings.ToLower(strings.TrimSpace(u.Role))
	}
	for i := range c.Destinations {
		d := &c.Destinations[i]
		d.Name = strings.TrimSpace(d.Name)
		if d.Status == "" {
			d.Status = "aktif"
		}
	}
	for i := range c.Countries {
		c.Countries[i].Code = strings.ToUpper(strings.TrimSpace(c.Countries[i].Code))
	}
}

// Validate mengumpulkan semua masalah katalog sekaligus.
func (c *Catalog) Validate() error {
	var errs []error
	if c.YearFrom < 2000 || c.YearFrom > 2100 {
		errs = append(errs, fmt.Errorf("year_from %d out of range", c.YearFrom))
	}
	emails := map[string]bool{}
	for i, u := range c.Users {
		if u.Email == "" || !strings.Contains(u.Email, "@") {
			errs = append(errs, fmt.Errorf("users[%d]: invalid email %q", i, u.Email))
		}
		if emails[u.Email] {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate email %q", i, u.Email))
		}
		emails[u.Email] = true
		if u.Role != "admin" && u.Role != "pengelola" {
			errs = append(errs, fmt.Errorf("users[%d]: invalid role %q", i, u.Role))
		}
	}
	for i, d := range c.Destinations {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("destinations[%d]: name required", i))
		}
		if d.ManagementType != "pemerintah" && d.ManagementType != "swasta" {
			errs = append(errs, fmt.Errorf("destinations[%d]: invalid management_type %q", i, d.ManagementType))
		}
		if d.Status != "aktif" && d.Status != "nonaktif" {
			errs = append(errs, fmt.Errorf("destinations[%d]: invalid status %q", i, d.Status))
		}
	}
	for i, ct := range c.Countries {
		if len(ct.Code) != 2 {
			errs = append(errs, fmt.Errorf("countries[%d]: code must be ISO alpha-2, got %q", i, ct.Code))
		}
	}
	return errors.Join(errs...)
}
