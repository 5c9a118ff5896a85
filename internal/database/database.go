package database

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"agua-be-svc/internal/config"
	"agua-be-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs the schema migrations and seeds the default configuration
func (d *Database) AutoMigrate() error {
	err := d.DB.AutoMigrate(
		&models.Morador{},
		&models.Periodo{},
		&models.Consumo{},
		&models.Pagamento{},
		&models.Configuracao{},
		&models.Usuario{},
		&models.CobrancaEnvio{},
		&models.SchedulerLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return d.seedConfiguracao()
}

// seedConfiguracao inserts the default tariff configuration when none exists
func (d *Database) seedConfiguracao() error {
	var config models.Configuracao

	err := d.DB.First(&config).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check configuration: %w", err)
	}

	defaults := &models.Configuracao{
		ChavePix:                "",
		NomeAssociacao:          "Associação de Moradores",
		TaxaMinimaComHidrometro: decimal.NewFromInt(10),
		TaxaMinimaSemHidrometro: decimal.NewFromInt(50),
		TaxaAssociado:           decimal.NewFromInt(8),
		PercentualMultaAtraso:   decimal.NewFromInt(2),
		FaixaNormalAte:          30,
		FaixaExcedente1Ate:      50,
		FaixaExcedente1Percent:  decimal.NewFromInt(30),
		FaixaExcedente2Percent:  decimal.NewFromInt(60),
	}
	if err := d.DB.Create(defaults).Error; err != nil {
		return fmt.Errorf("failed to seed configuration: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
