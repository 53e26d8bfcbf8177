package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	listRoutesQuery = `
		SELECT id_ruta, nombre_ruta, precio_base::float8 AS precio_base
		FROM rutas
		ORDER BY nombre_ruta`

	listVehiclesQuery = `
		SELECT id_unidad, numero_disco, placa
		FROM unidades
		ORDER BY numero_disco`

	listFareTypesQuery = `
		SELECT id_tipo_pasaje, descripcion, porcentaje_descuento::float8 AS porcentaje_descuento
		FROM tipos_pasaje
		ORDER BY descripcion`

	routeBasePriceQuery = `SELECT precio_base::float8 FROM rutas WHERE id_ruta = $1`

	fareTypeDiscountQuery = `SELECT porcentaje_descuento::float8 FROM tipos_pasaje WHERE id_tipo_pasaje = $1`
)

type referenceRepository struct {
	db *DB
}

// NewReferenceRepository создает repository справочных данных
func NewReferenceRepository(db *DB) repository.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	var routes []domain.Route
	if err := sqlx.SelectContext(ctx, r.db.executor(ctx), &routes, listRoutesQuery); err != nil {
		r.db.logger.Error("Failed to list routes", zap.Error(err))
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	return routes, nil
}

func (r *referenceRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := sqlx.SelectContext(ctx, r.db.executor(ctx), &vehicles, listVehiclesQuery); err != nil {
		r.db.logger.Error("Failed to list vehicles", zap.Error(err))
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	return vehicles, nil
}

func (r *referenceRepository) ListFareTypes(ctx context.Context) ([]domain.FareType, error) {
	var fareTypes []domain.FareType
	if err := sqlx.SelectContext(ctx, r.db.executor(ctx), &fareTypes, listFareTypesQuery); err != nil {
		r.db.logger.Error("Failed to list fare types", zap.Error(err))
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	return fareTypes, nil
}

func (r *referenceRepository) GetRouteBasePrice(ctx context.Context, routeID domain.ID) (float64, error) {
	var price float64
	err := sqlx.GetContext(ctx, r.db.executor(ctx), &price, routeBasePriceQuery, int64(routeID))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrRouteNotFound.Wrapf("Ruta %d no encontrada", routeID)
	}
	if err != nil {
		r.db.logger.Error("Failed to get route base price", zap.Int64("route_id", int64(routeID)), zap.Error(err))
		return 0, apperrors.ErrDatabaseError.Wrap(err)
	}
	return price, nil
}

func (r *referenceRepository) GetFareTypeDiscount(ctx context.Context, fareTypeID domain.ID) (float64, error) {
	var discount float64
	err := sqlx.GetContext(ctx, r.db.executor(ctx), &discount, fareTypeDiscountQuery, int64(fareTypeID))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrFareTypeNotFound.Wrapf("Tipo de pasaje %d no encontrado", fareTypeID)
	}
	if err != nil {
		r.db.logger.Error("Failed to get fare type discount", zap.Int64("fare_type_id", int64(fareTypeID)), zap.Error(err))
		return 0, apperrors.ErrDatabaseError.Wrap(err)
	}
	return discount, nil
}
