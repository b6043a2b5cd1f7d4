package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "myguide/internal/models/db_models"
	"myguide/pkg/utils"
)

type fakeProvinceRepo struct {
	provinces []dbm.Province
	err       error
}

func (f *fakeProvinceRepo) GetListOfProvinces(ctx context.Context, page int, pageSize int) ([]dbm.Province, error) {
	return f.provinces, f.err
}

func TestProvinceService_GetAllProvinces(t *testing.T) {
	repo := &fakeProvinceRepo{provinces: []dbm.Province{
		{Name: "Alger", Districts: []dbm.District{{Name: "Alger-Centre"}, {Name: "Bab El Oued"}}},
		{Name: "Oran"},
	}}
	svc := NewProvinceService(repo)

	out, err := svc.GetAllProvinces(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Alger", out[0].Name)
	assert.Equal(t, []string{"Alger-Centre", "Bab El Oued"}, out[0].Districts)
	assert.Empty(t, out[1].Districts)
	assert.NotNil(t, out[1].Districts)
}

func TestProvinceService_Errors(t *testing.T) {
	ctx := context.Background()
	svc := NewProvinceService(&fakeProvinceRepo{})

	_, err := svc.GetAllProvinces(ctx, 0, 5)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.GetAllProvinces(ctx, 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	out, err := NewProvinceService(&fakeProvinceRepo{}).GetAllProvinces(ctx, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = NewProvinceService(&fakeProvinceRepo{err: errors.New("timeout")}).GetAllProvinces(ctx, 1, 5)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
