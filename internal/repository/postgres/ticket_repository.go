package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	listTicketsQuery = `
		SELECT p.id_pasaje, p.fecha_viaje, r.nombre_ruta, u.numero_disco, tp.descripcion,
		       p.valor_final::float8 AS valor_final, p.nombre_pasajero
		FROM pasajes p
		JOIN rutas r ON p.id_ruta = r.id_ruta
		JOIN unidades u ON p.id_unidad = u.id_unidad
		JOIN tipos_pasaje tp ON p.id_tipo_pasaje = tp.id_tipo_pasaje
		WHERE 1=1`

	insertTicketQuery = `
		INSERT INTO pasajes (fecha_viaje, id_ruta, id_unidad, id_tipo_pasaje, valor_final, nombre_pasajero)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_pasaje`

	deleteTicketQuery = `DELETE FROM pasajes WHERE id_pasaje = $1`
)

type ticketRepository struct {
	db *DB
}

// NewTicketRepository создает repository билетов
func NewTicketRepository(db *DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) List(ctx context.Context, routeID *domain.ID) ([]domain.TicketView, error) {
	var (
		query strings.Builder
		args  []interface{}
	)
	query.WriteString(listTicketsQuery)

	if routeID != nil {
		args = append(args, int64(*routeID))
		query.WriteString(" AND p.id_ruta = $1")
	}
	query.WriteString(" ORDER BY p.fecha_viaje DESC")

	var tickets []domain.TicketView
	if err := sqlx.SelectContext(ctx, r.db.executor(ctx), &tickets, query.String(), args...); err != nil {
		r.db.logger.Error("Failed to list tickets", zap.Error(err))
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	return tickets, nil
}

func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) (domain.ID, error) {
	var id int64
	err := sqlx.GetContext(ctx, r.db.executor(ctx), &id, insertTicketQuery,
		t.TravelDate,
		int64(t.RouteID),
		int64(t.VehicleID),
		int64(t.FareTypeID),
		t.FinalValue,
		t.PassengerName,
	)
	if err != nil {
		r.db.logger.Error("Failed to insert ticket", zap.Error(err))
		return 0, apperrors.ErrDatabaseError.Wrap(err)
	}
	return domain.ID(id), nil
}

func (r *ticketRepository) Delete(ctx context.Context, id domain.ID) (bool, error) {
	res, err := r.db.executor(ctx).ExecContext(ctx, deleteTicketQuery, int64(id))
	if err != nil {
		r.db.logger.Error("Failed to delete ticket", zap.Int64("ticket_id", int64(id)), zap.Error(err))
		return false, apperrors.ErrDatabaseError.Wrap(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.ErrDatabaseError.Wrap(err)
	}
	return affected > 0, nil
}
