// Package seed bootstraps an empty database and loads YAML fixtures.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/service"
)

type Fixture struct {
	Stores []StoreFixture `yaml:"stores"`
	Staff  []StaffFixture `yaml:"staff"`
}

type StoreFixture struct {
	Code  string        `yaml:"code"`
	Name  string        `yaml:"name"`
	City  *string       `yaml:"city"`
	Items []ItemFixture `yaml:"items"`
}

type ItemFixture struct {
	Code  string  `yaml:"code"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
}

type StaffFixture struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

// Result counts the records Apply actually inserted.
type Result struct {
	Stores int
	Items  int
	Staff  int
}

type CatalogService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	CreateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	CreateItem(ctx context.Context, storeCode string, item domain.Item) (domain.Item, error)
}

type StaffService interface {
	CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error)
}

// Default is the store and manager account a fresh installation starts with.
func Default() Fixture {
	city := "Harrogate"

	return Fixture{
		Stores: []StoreFixture{{Code: "HRG-001", Name: "Harrogate Superstore", City: &city}},
		Staff:  []StaffFixture{{Username: "admin", Name: "Admin", Role: "manager"}},
	}
}

func LoadFile(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("os.ReadFile -> %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("yaml.Unmarshal -> %w", err)
	}

	return f, nil
}

type Seeder struct {
	catalog CatalogService
	staff   StaffService
}

func New(catalog CatalogService, staff StaffService) *Seeder {
	return &Seeder{
		catalog: catalog,
		staff:   staff,
	}
}

// NewForDB wires a Seeder to the catalog and staff services backed by gdb.
func NewForDB(gdb *gorm.DB) *Seeder {
	catalog := service.NewCatalogService(repository.NewCatalogRepository(dao.NewCatalogDAO(gdb)))
	staff := service.NewStaffService(repository.NewStaffRepository(dao.NewStaffDAO(gdb)))

	return New(catalog, staff)
}

// Apply inserts every record of f whose business key is not taken yet.
// Running it twice is a no-op the second time.
func (s *Seeder) Apply(ctx context.Context, f Fixture) (Result, error) {
	var res Result

	for _, sf := range f.Stores {
		_, err := s.catalog.CreateStore(ctx, domain.Store{Code: sf.Code, Name: sf.Name, City: sf.City})
		switch {
		case err == nil:
			res.Stores++
		case errors.Is(err, service.ErrStoreCodeExists):
		default:
			return res, fmt.Errorf("s.catalog.CreateStore(%s) -> %w", sf.Code, err)
		}

		for _, it := range sf.Items {
			_, err := s.catalog.CreateItem(ctx, sf.Code, domain.Item{
				Code:  it.Code,
				Name:  it.Name,
				Price: it.Price,
				Stock: it.Stock,
			})
			switch {
			case err == nil:
				res.Items++
			case errors.Is(err, service.ErrItemCodeExists):
			default:
				return res, fmt.Errorf("s.catalog.CreateItem(%s/%s) -> %w", sf.Code, it.Code, err)
			}
		}
	}

	for _, st := range f.Staff {
		_, err := s.staff.CreateStaff(ctx, domain.Staff{Username: st.Username, Name: st.Name, Role: st.Role})
		switch {
		case err == nil:
			res.Staff++
		case errors.Is(err, service.ErrStaffUsernameExists):
		default:
			return res, fmt.Errorf("s.staff.CreateStaff(%s) -> %w", st.Username, err)
		}
	}

	return res, nil
}

// EnsureDefaults applies Default when no store exists yet.
func (s *Seeder) EnsureDefaults(ctx context.Context) error {
	stores, err := s.catalog.ListStores(ctx)
	if err != nil {
		return fmt.Errorf("s.catalog.ListStores -> %w", err)
	}
	if len(stores) > 0 {
		return nil
	}

	res, err := s.Apply(ctx, Default())
	if err != nil {
		return err
	}
	zap.L().Info("seeded default data", zap.Int("stores", res.Stores), zap.Int("staff", res.Staff))

	return nil
}
