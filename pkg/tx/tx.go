package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) exec(
	ctx context.Context,
	opts pgx.TxOptions,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(opts),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет изменение агрегата груза (запись события, смена маршрута)
// в serializable транзакции.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// ReadOnly даёт согласованный снимок груза и его истории для расчёта доставки:
// чтения внутри fn не увидят частично записанных событий.
func (m *Manager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}
