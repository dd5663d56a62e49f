package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CURRENCY", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SHIPPING_FEE", "")
	t.Setenv("PRICE_PER_MEAL", "")
	t.Setenv("SCHEDULER_ENABLED", "")

	LoadConfig()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "postgres", AppConfig.DBDriver)
	assert.Equal(t, 4.95, AppConfig.ShippingFee)
	assert.Equal(t, 8.50, AppConfig.PricePerMeal)
	assert.Equal(t, "GBP", AppConfig.Currency)
	assert.True(t, AppConfig.SchedulerEnabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SHIPPING_FEE", "3.5")
	t.Setenv("SALT_ROUND", "4")
	t.Setenv("SCHEDULER_ENABLED", "false")

	LoadConfig()

	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.Equal(t, 3.5, AppConfig.ShippingFee)
	assert.Equal(t, 4, AppConfig.SaltRound)
	assert.False(t, AppConfig.SchedulerEnabled)
}

func TestEnvParsersFallBackOnGarbage(t *testing.T) {
	t.Setenv("HC_TEST_INT", "abc")
	t.Setenv("HC_TEST_FLOAT", "x1")
	t.Setenv("HC_TEST_BOOL", "maybe")

	assert.Equal(t, 7, getEnvInt("HC_TEST_INT", 7))
	assert.Equal(t, 1.25, getEnvFloat("HC_TEST_FLOAT", 1.25))
	assert.True(t, getEnvBool("HC_TEST_BOOL", true))
}
