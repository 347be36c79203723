package entity

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// migrationTables разбирает CREATE TABLE блоки миграции и возвращает
// для каждой таблицы множество колонок с их SQL-типами
func migrationTables(t *testing.T) map[string]map[string]string {
	t.Helper()

	sqlBytes, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err, "Файл миграции должен читаться")

	tables := make(map[string]map[string]string)
	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\);`)
	for _, match := range re.FindAllStringSubmatch(string(sqlBytes), -1) {
		columns := make(map[string]string)
		for _, line := range strings.Split(match[2], "\n") {
			line = strings.TrimSuffix(strings.TrimSpace(line), ",")
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			switch strings.ToUpper(fields[0]) {
			case "PRIMARY", "FOREIGN", "CONSTRAINT", "UNIQUE", "CHECK":
				continue
			}
			columns[fields[0]] = strings.ToUpper(fields[1])
		}
		tables[match[1]] = columns
	}
	return tables
}

// TestMigrationSchema_MatchesEntities проверяет, что каждая колонка,
// которую GORM включает в INSERT/SELECT для сущности, существует в
// таблице из миграции. Расхождение здесь означает, что первый же
// Create на свежей базе упадет.
func TestMigrationSchema_MatchesEntities(t *testing.T) {
	tables := migrationTables(t)

	models := []interface{}{
		&User{}, &Course{}, &Chapter{}, &Question{}, &StudySession{}, &QuizResult{},
	}

	cache := &sync.Map{}
	for _, model := range models {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err, "Сущность должна разбираться GORM")

		columns, ok := tables[parsed.Table]
		require.True(t, ok, "Таблица %s должна существовать в миграции", parsed.Table)

		for _, dbName := range parsed.DBNames {
			_, exists := columns[dbName]
			assert.True(t, exists, "Колонка %s.%s объявлена в сущности %s, но отсутствует в миграции",
				parsed.Table, dbName, parsed.Name)
		}
	}
}

// TestMigrationSchema_VarcharSizesMatchTags проверяет, что ширина
// VARCHAR-колонок в миграции совпадает с gorm-тегами size сущностей
func TestMigrationSchema_VarcharSizesMatchTags(t *testing.T) {
	tables := migrationTables(t)

	models := []interface{}{
		&User{}, &Course{}, &Chapter{}, &Question{}, &StudySession{}, &QuizResult{},
	}

	varcharRe := regexp.MustCompile(`^VARCHAR\((\d+)\)$`)

	cache := &sync.Map{}
	for _, model := range models {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		columns := tables[parsed.Table]
		for dbName, sqlType := range columns {
			match := varcharRe.FindStringSubmatch(sqlType)
			if match == nil {
				continue
			}
			field, ok := parsed.FieldsByDBName[dbName]
			if !ok {
				continue
			}

			width, err := strconv.Atoi(match[1])
			require.NoError(t, err)
			assert.Equal(t, width, field.Size,
				"Ширина %s.%s: в миграции VARCHAR(%d), в теге size:%d",
				parsed.Table, dbName, width, field.Size)
		}
	}
}
