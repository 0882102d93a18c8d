package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

// El NIT es obligatorio: sin él la empresa no se crea.
func TestCompany_CreateRequiereNombreYNIT(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "", NIT: "900123456-7"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "ACME Ltda", NIT: ""})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestCompany_CreateQuedaActiva(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "ACME Ltda", NIT: "900123456-7"})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "900123456-7", resp.NIT)
	assert.Len(t, repo.companies, 1)
}
