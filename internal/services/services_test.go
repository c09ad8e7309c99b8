package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmacia/internal/config"
	"farmacia/internal/database"
	"farmacia/internal/repositories"
)

// memCache is an in-process Cache that records how it was used.
type memCache struct {
	entries       map[string][]byte
	version       int64
	gets, hits    int
	invalidations int
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Version(context.Context) (int64, error) { return c.version, nil }

func (c *memCache) Set(_ context.Context, key string, value any, version int64) error {
	if version != c.version {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.invalidations++
	c.version++
	c.entries = map[string][]byte{}
	return nil
}

type fixture struct {
	especialidades *EspecialidadService
	tipos          *TipoMedicService
	medicamentos   *MedicamentoService
	cache          *memCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cache := newMemCache()
	f := newFixtureWithCache(t, cache)
	f.cache = cache
	return f
}

func newFixtureWithCache(t *testing.T, cache Cache) *fixture {
	t.Helper()
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.EnsureSchema(context.Background(), db, cfg))

	espRepo := repositories.NewEspecialidadRepository(db)
	tipoRepo := repositories.NewTipoMedicRepository(db)
	medRepo := repositories.NewMedicamentoRepository(db)

	return &fixture{
		especialidades: NewEspecialidadService(espRepo, medRepo, cache),
		tipos:          NewTipoMedicService(tipoRepo, medRepo, cache),
		medicamentos:   NewMedicamentoService(medRepo, tipoRepo, espRepo, cache),
	}
}

func uintPtr(v uint) *uint { return &v }

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, msg, verr.Message)
}

func TestEspecialidad_CreateAssignsFreshCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Cardiología"})
	require.NoError(t, err)
	b, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Neurología"})
	require.NoError(t, err)

	assert.Equal(t, "Cardiología", a.DescripcionEsp)
	assert.NotZero(t, a.CodEspec)
	assert.NotEqual(t, a.CodEspec, b.CodEspec)

	_, err = f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "   "})
	requireValidation(t, err, "La descripción de la especialidad es obligatoria")
}

func TestEspecialidad_GetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.especialidades.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, MsgEspecialidadNoEncontrada, err.Error())
}

func TestEspecialidad_DeleteGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	esp, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Cardiología"})
	require.NoError(t, err)
	for _, name := range []string{"Atorvastatina", "Enalapril"} {
		_, err := f.medicamentos.Create(ctx, CreateMedicamentoRequest{DescripcionMed: name, Stock: 1, CodEspec: uintPtr(esp.CodEspec)})
		require.NoError(t, err)
	}

	err = f.especialidades.Delete(ctx, esp.CodEspec)
	requireValidation(t, err, "No se puede eliminar la especialidad porque tiene 2 medicamento(s) asociado(s)")

	list, err := f.especialidades.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, esp.CodEspec, list[0].CodEspec)
}

func TestEspecialidad_DeleteUnreferenced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	keep, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Oncología"})
	require.NoError(t, err)
	drop, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Dermatología"})
	require.NoError(t, err)

	require.NoError(t, f.especialidades.Delete(ctx, drop.CodEspec))

	list, err := f.especialidades.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.CodEspec, list[0].CodEspec)

	err = f.especialidades.Delete(ctx, drop.CodEspec)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEspecialidad_UpdatePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	esp, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Cardio"})
	require.NoError(t, err)

	updated, err := f.especialidades.Update(ctx, esp.CodEspec, Patch{
		"descripcionEsp": raw(t, "Cardiología"),
		"CodEspec":       raw(t, 999),
	})
	require.NoError(t, err)
	assert.Equal(t, esp.CodEspec, updated.CodEspec)
	assert.Equal(t, "Cardiología", updated.DescripcionEsp)

	unchanged, err := f.especialidades.Update(ctx, esp.CodEspec, Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Cardiología", unchanged.DescripcionEsp)

	_, err = f.especialidades.Update(ctx, esp.CodEspec, Patch{"nombre": raw(t, "x")})
	requireValidation(t, err, "Campo desconocido: nombre")

	_, err = f.especialidades.Update(ctx, 404, Patch{"descripcionEsp": raw(t, "x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTipoMedic_DeleteGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tipo, err := f.tipos.Create(ctx, CreateTipoMedicRequest{Descripcion: "Antibiótico"})
	require.NoError(t, err)
	_, err = f.medicamentos.Create(ctx, CreateMedicamentoRequest{DescripcionMed: "Amoxicilina", CodTipoMed: uintPtr(tipo.CodTipoMed)})
	require.NoError(t, err)

	err = f.tipos.Delete(ctx, tipo.CodTipoMed)
	requireValidation(t, err, "No se puede eliminar el tipo de medicamento porque tiene 1 medicamento(s) asociado(s)")

	got, err := f.tipos.Get(ctx, tipo.CodTipoMed)
	require.NoError(t, err)
	require.Len(t, got.Medicamentos, 1)
	assert.Equal(t, "Amoxicilina", got.Medicamentos[0].DescripcionMed)
}

func TestMedicamento_CreateRejectsDanglingRefs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.medicamentos.Create(ctx, CreateMedicamentoRequest{DescripcionMed: "Ibuprofeno", CodTipoMed: uintPtr(77)})
	requireValidation(t, err, MsgTipoNoEncontrado)

	_, err = f.medicamentos.Create(ctx, CreateMedicamentoRequest{DescripcionMed: "Ibuprofeno", CodEspec: uintPtr(88)})
	requireValidation(t, err, MsgEspecialidadNoEncontrada)

	list, err := f.medicamentos.List(ctx, repositories.MedicamentoFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestMedicamento_CreateAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tipo, err := f.tipos.Create(ctx, CreateTipoMedicRequest{Descripcion: "Analgésico"})
	require.NoError(t, err)
	esp, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Neurología"})
	require.NoError(t, err)

	med, err := f.medicamentos.Create(ctx, CreateMedicamentoRequest{
		DescripcionMed: "Paracetamol",
		Stock:          20,
		PrecioVentaUni: decimal.RequireFromString("1.50"),
		CodTipoMed:     uintPtr(tipo.CodTipoMed),
	})
	require.NoError(t, err)
	assert.NotZero(t, med.CodMedicamento)

	updated, err := f.medicamentos.Update(ctx, med.CodMedicamento, Patch{
		"stock":          raw(t, 35),
		"precioVentaUni": json.RawMessage(`"2.75"`),
		"CodEspec":       raw(t, esp.CodEspec),
		"CodTipoMed":     json.RawMessage(`null`),
	})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Stock)
	assert.True(t, decimal.RequireFromString("2.75").Equal(updated.PrecioVentaUni))
	assert.Nil(t, updated.CodTipoMed)
	assert.Nil(t, updated.TipoMedic)
	require.NotNil(t, updated.Especialidad)
	assert.Equal(t, "Neurología", updated.Especialidad.DescripcionEsp)

	_, err = f.medicamentos.Update(ctx, med.CodMedicamento, Patch{"CodEspec": raw(t, 500)})
	requireValidation(t, err, MsgEspecialidadNoEncontrada)

	_, err = f.medicamentos.Update(ctx, med.CodMedicamento, Patch{"stock": raw(t, "muchos")})
	requireValidation(t, err, "Valor inválido para stock")

	filtered, err := f.medicamentos.List(ctx, repositories.MedicamentoFilter{CodEspec: uintPtr(esp.CodEspec)})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	require.NoError(t, f.medicamentos.Delete(ctx, med.CodMedicamento))
	_, err = f.medicamentos.Get(ctx, med.CodMedicamento)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, f.medicamentos.Delete(ctx, med.CodMedicamento), ErrNotFound)
}

func TestLists_AreCachedUntilMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	esp, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Cardiología"})
	require.NoError(t, err)

	_, err = f.especialidades.List(ctx)
	require.NoError(t, err)
	list, err := f.especialidades.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
	assert.Empty(t, list[0].Medicamentos)

	// A medication created elsewhere changes the nested summaries, so the
	// specialty list must be rebuilt.
	_, err = f.medicamentos.Create(ctx, CreateMedicamentoRequest{DescripcionMed: "Atorvastatina", Stock: 4, CodEspec: uintPtr(esp.CodEspec)})
	require.NoError(t, err)

	list, err = f.especialidades.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
	require.Len(t, list[0].Medicamentos, 1)
	assert.Equal(t, 4, list[0].Medicamentos[0].Stock)

	_, err = f.medicamentos.List(ctx, repositories.MedicamentoFilter{CodEspec: uintPtr(esp.CodEspec)})
	require.NoError(t, err)
	_, cached := f.cache.entries[cacheKeyMedicamentos]
	assert.False(t, cached)
}

// interleavedCache runs beforeSet once, between the list load and the
// cache write.
type interleavedCache struct {
	*memCache
	beforeSet func()
}

func (c *interleavedCache) Set(ctx context.Context, key string, value any, version int64) error {
	if f := c.beforeSet; f != nil {
		c.beforeSet = nil
		f()
	}
	return c.memCache.Set(ctx, key, value, version)
}

func TestLists_MutationDuringLoadIsNotCached(t *testing.T) {
	ctx := context.Background()
	cache := &interleavedCache{memCache: newMemCache()}
	f := newFixtureWithCache(t, cache)

	cache.beforeSet = func() {
		_, err := f.especialidades.Create(ctx, CreateEspecialidadRequest{DescripcionEsp: "Cardiología"})
		require.NoError(t, err)
	}

	before, err := f.especialidades.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)
	assert.NotContains(t, cache.entries, cacheKeyEspecialidades)

	after, err := f.especialidades.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Cardiología", after[0].DescripcionEsp)
	assert.Equal(t, 0, cache.hits)

	_, err = f.especialidades.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
}

func TestPatchColumns(t *testing.T) {
	cols, err := Patch{
		"descripcionMed": raw(t, "  Omeprazol "),
		"stock":          raw(t, 3),
		"precioVentaUni": raw(t, 4.5),
		"CodEspec":       raw(t, 2),
		"CodTipoMed":     json.RawMessage(`null`),
		"CodMedicamento": raw(t, 9),
	}.columns(medicamentoPatch)
	require.NoError(t, err)

	assert.Equal(t, "Omeprazol", cols["descripcion_med"])
	assert.Equal(t, 3, cols["stock"])
	assert.True(t, decimal.NewFromFloat(4.5).Equal(cols["precio_venta_uni"].(decimal.Decimal)))
	assert.Equal(t, uint(2), cols["cod_espec"])
	v, ok := cols["cod_tipo_med"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.NotContains(t, cols, "cod_medicamento")

	_, err = Patch{"stock": json.RawMessage(`null`)}.columns(medicamentoPatch)
	requireValidation(t, err, "Valor inválido para stock")

	_, err = Patch{"descripcion": raw(t, "")}.columns(tipoMedicPatch)
	requireValidation(t, err, "El campo descripcion no puede estar vacío")

	_, err = Patch{"CodEspec": raw(t, -1)}.columns(medicamentoPatch)
	requireValidation(t, err, "Valor inválido para CodEspec")
}
