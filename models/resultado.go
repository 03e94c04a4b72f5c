package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"github.com/bsm/redislock"
	gosqlmysql "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResultadoInventario is the immutable finalization summary: one row per
// (cod_inventario, mode). The unique index closes the concurrent-finalize
// race at the storage layer; the application-level existence check only gives
// a friendlier error. Only the mode's pair of totals/diffs is populated; diffs
// stay NULL when no prior result of the same mode exists.
type ResultadoInventario struct {
	ID            int           `gorm:"primaryKey" json:"id"`
	CodInventario int           `gorm:"column:cod_inventario;uniqueIndex:idx_resultado_cod_mode" json:"cod_inventario"`
	Mode          InventoryMode `gorm:"column:mode;size:32;uniqueIndex:idx_resultado_cod_mode" json:"mode"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`

	CaixaHb623 *int `gorm:"column:caixa_hb_623" json:"caixa_hb_623,omitempty"`
	CaixaHb618 *int `gorm:"column:caixa_hb_618" json:"caixa_hb_618,omitempty"`
	CaixaHntG  *int `gorm:"column:caixa_hnt_g" json:"caixa_hnt_g,omitempty"`
	CaixaHntP  *int `gorm:"column:caixa_hnt_p" json:"caixa_hnt_p,omitempty"`

	DiffCaixaHb623 *int `gorm:"column:diff_caixa_hb_623" json:"diff_caixa_hb_623,omitempty"`
	DiffCaixaHb618 *int `gorm:"column:diff_caixa_hb_618" json:"diff_caixa_hb_618,omitempty"`
	DiffCaixaHntG  *int `gorm:"column:diff_caixa_hnt_g" json:"diff_caixa_hnt_g,omitempty"`
	DiffCaixaHntP  *int `gorm:"column:diff_caixa_hnt_p" json:"diff_caixa_hnt_p,omitempty"`
}

func (ResultadoInventario) TableName() string {
	return "ativo_resultado_inv"
}

// Totais returns the mode's pair of totals, zero when unset.
func (r *ResultadoInventario) Totais() ModePair {
	var v1, v2 *int
	if r.Mode == ModeInventarioHNT {
		v1, v2 = r.CaixaHntG, r.CaixaHntP
	} else {
		v1, v2 = r.CaixaHb623, r.CaixaHb618
	}
	var pair ModePair
	if v1 != nil {
		pair.Valor1 = *v1
	}
	if v2 != nil {
		pair.Valor2 = *v2
	}
	return pair
}

func (r *ResultadoInventario) setTotais(pair ModePair) {
	v1, v2 := pair.Valor1, pair.Valor2
	if r.Mode == ModeInventarioHNT {
		r.CaixaHntG, r.CaixaHntP = &v1, &v2
	} else {
		r.CaixaHb623, r.CaixaHb618 = &v1, &v2
	}
}

func (r *ResultadoInventario) setDiffs(d1, d2 int) {
	if r.Mode == ModeInventarioHNT {
		r.DiffCaixaHntG, r.DiffCaixaHntP = &d1, &d2
	} else {
		r.DiffCaixaHb623, r.DiffCaixaHb618 = &d1, &d2
	}
}

// GetResultado fetches the finalization result for one cycle+mode pair, nil
// when none exists.
func GetResultado(ctx context.Context, codInventario int, mode InventoryMode) (*ResultadoInventario, error) {
	db := config.GetDB()
	var result ResultadoInventario
	err := db.WithContext(ctx).
		Where("cod_inventario = ? AND mode = ?", codInventario, mode).
		Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// LatestResultados returns up to limit results for one mode, newest cycle
// first.
func LatestResultados(ctx context.Context, mode InventoryMode, limit int) ([]ResultadoInventario, error) {
	db := config.GetDB()
	var results []ResultadoInventario
	err := db.WithContext(ctx).
		Where("mode = ?", mode).
		Order("cod_inventario DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FinalizarInventario runs the one-shot finalization of the current cycle for
// a mode:
//
//  1. anchor on the CD source's maximum cycle id;
//  2. reject when a result for (cycle, mode) already exists;
//  3. aggregate the cycle's store, transit and supplier rows into regional
//     rollups and grand totals;
//  4. diff the totals against the most recent prior result of the same mode
//     (diffs stay null without one);
//  5. insert the summary row. Insertion is the only write and happens after
//     all reads, so a failed run leaves no partial state.
//
// The returned breakdown (per-store, per-region) is not persisted.
func FinalizarInventario(ctx context.Context, mode InventoryMode) (*ResultadoInventario, *FinalizationBreakdown, error) {
	logger := config.GetLogger()

	// Best-effort serialization of concurrent finalize calls. The unique
	// index still decides the winner when the lock is unavailable.
	if redisLock := config.GetRedisLock(); redisLock != nil {
		lock, err := redisLock.Obtain(ctx, "lock:finalizar:"+string(mode), 30*time.Second, nil)
		if err == nil {
			defer func() {
				if releaseErr := lock.Release(ctx); releaseErr != nil {
					logger.WithFields(logrus.Fields{
						"field": "FinalizarInventario",
						"mode":  mode,
					}).Warn("failed to release redis lock: " + releaseErr.Error())
				}
			}()
		} else if err != redislock.ErrNotObtained {
			logger.WithFields(logrus.Fields{
				"field": "FinalizarInventario",
				"mode":  mode,
			}).Warn("error obtaining redis lock; proceeding without it: " + err.Error())
		}
	}

	currentCod, err := MaxCodInventario(ctx, SourceInventarioCD)
	if err != nil {
		return nil, nil, err
	}

	existing, err := GetResultado(ctx, currentCod, mode)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, utils.ErrorAlreadyFinalized
	}

	counts, err := FetchCounts(ctx, SourceContagemLojas, currentCod)
	if err != nil {
		return nil, nil, err
	}
	transito, err := FetchTransito(ctx, currentCod)
	if err != nil {
		return nil, nil, err
	}
	fornecedores, err := FetchFornecedores(ctx, currentCod)
	if err != nil {
		return nil, nil, err
	}

	breakdown := ComputeFinalization(mode, counts, transito, fornecedores)

	result := ResultadoInventario{
		CodInventario: currentCod,
		Mode:          mode,
		CreatedAt:     time.Now().UTC(),
	}
	result.setTotais(breakdown.TotalFinal)

	previous, err := LatestResultados(ctx, mode, 1)
	if err != nil {
		return nil, nil, err
	}
	if len(previous) > 0 {
		prevPair := previous[0].Totais()
		result.setDiffs(
			breakdown.TotalFinal.Valor1-prevPair.Valor1,
			breakdown.TotalFinal.Valor2-prevPair.Valor2,
		)
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&result).Error; err != nil {
		if isDuplicateEntry(err) {
			// Lost the race: another request finalized this cycle first.
			return nil, nil, utils.ErrorAlreadyFinalized
		}
		return nil, nil, err
	}

	return &result, &breakdown, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *gosqlmysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
