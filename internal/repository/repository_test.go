package repository

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"anketa/internal/core"
	"anketa/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func createTestRepository(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	baseDir := filepath.Join(t.TempDir(), "Анкеты")
	opts = append([]Option{WithClock(core.FixedClock{T: testNow})}, opts...)
	return NewRepository(baseDir, opts...)
}

func developerSurvey(fullName string, createdAt time.Time) *schema.Survey {
	a := schema.NewAnswers()
	a.Set("ФИО", fullName)
	a.Set("Дата рождения", "15.06.1990")
	a.Set("Язык программирования", "C#")
	a.Set("Опыт работы (лет)", "7")
	return &schema.Survey{Answers: a, CreatedAt: createdAt}
}

func writeRaw(t *testing.T, repo *Repository, name, content string) {
	t.Helper()
	require.NoError(t, repo.EnsureStorageExists())
	require.NoError(t, os.WriteFile(filepath.Join(repo.BaseDir(), name), []byte(content), 0644))
}

func TestRepository_SaveAndFind(t *testing.T) {
	repo := createTestRepository(t)

	s := developerSurvey("Иванов Иван Иванович", testNow)
	fileName, err := repo.Save(s)
	require.NoError(t, err)
	assert.Equal(t, "Иван.txt", fileName)
	assert.Equal(t, fileName, s.FileName)

	data, err := os.ReadFile(filepath.Join(repo.BaseDir(), fileName))
	require.NoError(t, err)
	assert.Equal(t, "1. ФИО: Иванов Иван Иванович\n"+
		"2. Дата рождения: 15.06.1990\n"+
		"3. Язык программирования: C#\n"+
		"4. Опыт работы (лет): 7\n"+
		"Анкета заполнена: 15.06.2024\n", string(data))

	found, err := repo.Find(fileName)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Иванов Иван Иванович", found.FullName)
	assert.Equal(t, schema.LanguageCSharp, found.Language)
	assert.Equal(t, 7, found.ExperienceYears)
	assert.Equal(t, fileName, found.FileName)
}

func TestRepository_SaveOverwritesSameName(t *testing.T) {
	repo := createTestRepository(t)

	_, err := repo.Save(developerSurvey("Петров Иван", testNow))
	require.NoError(t, err)
	_, err = repo.Save(developerSurvey("Сидоров Иван", testNow))
	require.NoError(t, err)

	names, err := repo.ListFileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Иван.txt"}, names)

	found, err := repo.Find("Иван.txt")
	require.NoError(t, err)
	assert.Equal(t, "Сидоров Иван", found.FullName)
}

func TestRepository_SaveWithoutName(t *testing.T) {
	repo := createTestRepository(t)

	a := schema.NewAnswers()
	a.Set("Опыт работы (лет)", "3")
	fileName, err := repo.Save(&schema.Survey{Answers: a, CreatedAt: testNow})
	require.NoError(t, err)
	assert.Equal(t, "Unknown.txt", fileName)
}

func TestRepository_FindMissing(t *testing.T) {
	repo := createTestRepository(t)

	found, err := repo.Find("Никто.txt")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_PathSecurity(t *testing.T) {
	repo := createTestRepository(t)
	require.NoError(t, repo.EnsureStorageExists())

	outside := filepath.Join(filepath.Dir(repo.BaseDir()), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("1. ФИО: x\n"), 0644))

	tests := []struct {
		name     string
		fileName string
		security bool
	}{
		{"parent traversal", "../secret.txt", true},
		{"nested traversal", "a/../../secret.txt", true},
		{"absolute looking", "/../secret.txt", true},
		{"subdirectory", "sub/x.txt", false},
		{"bad characters", "x:y.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, findErr := repo.Find(tt.fileName)
			_, deleteErr := repo.Delete(tt.fileName)

			for _, err := range []error{findErr, deleteErr} {
				require.Error(t, err)
				var secErr *core.SecurityError
				var valErr *core.ValidationError
				if tt.security {
					assert.ErrorAs(t, err, &secErr)
				} else {
					assert.ErrorAs(t, err, &valErr)
				}
			}
		})
	}

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside storage must survive")
}

func TestRepository_Delete(t *testing.T) {
	repo := createTestRepository(t)

	fileName, err := repo.Save(developerSurvey("Иванов Иван", testNow))
	require.NoError(t, err)

	deleted, err := repo.Delete(fileName)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(fileName)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_ListFileNames(t *testing.T) {
	repo := createTestRepository(t)

	names, err := repo.ListFileNames()
	require.NoError(t, err)
	assert.Empty(t, names, "missing directory has no records")

	writeRaw(t, repo, "b.txt", "1. ФИО: B\n")
	writeRaw(t, repo, "a.txt", "1. ФИО: A\n")
	writeRaw(t, repo, "notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(repo.BaseDir(), "dir.txt"), 0755))

	names, err = repo.ListFileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestRepository_UnsupportedNamesAreNotListed(t *testing.T) {
	var logs bytes.Buffer
	repo := createTestRepository(t, WithLogger(core.NewLoggerTo(&logs, "info")))

	writeRaw(t, repo, "Иван.txt", "1. ФИО: Иванов Иван\n")
	writeRaw(t, repo, "O'Brien.txt", "1. ФИО: Sean O'Brien\n")

	names, err := repo.ListFileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Иван.txt"}, names)

	surveys, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, "Иванов Иван", surveys[0].FullName)
	assert.Contains(t, logs.String(), "O'Brien.txt")

	// Every listed name is one Find accepts.
	for _, name := range names {
		_, err := repo.Find(name)
		assert.NoError(t, err, name)
	}
}

func TestRepository_GetAllSkipsBadFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	var logs bytes.Buffer
	repo := createTestRepository(t, WithLogger(core.NewLoggerTo(&logs, "info")), WithConcurrency(2))

	for _, name := range []string{"Иванов Иван", "Петров Пётр", "Сидоров Сидор"} {
		_, err := repo.Save(developerSurvey(name, testNow))
		require.NoError(t, err)
	}
	writeRaw(t, repo, "broken.txt", "nothing useful here\n")
	require.NoError(t, os.Symlink(filepath.Join(repo.BaseDir(), "missing-target"), filepath.Join(repo.BaseDir(), "dangling.txt")))

	surveys, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, surveys, 3)

	var files []string
	for _, s := range surveys {
		files = append(files, s.FileName)
	}
	assert.Equal(t, []string{"Иван.txt", "Пётр.txt", "Сидор.txt"}, files)
	assert.Contains(t, logs.String(), "broken.txt")
}

func TestRepository_GetAllManyFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := createTestRepository(t, WithConcurrency(4))
	for i := 0; i < 40; i++ {
		writeRaw(t, repo, fmt.Sprintf("r%02d.txt", i), "1. ФИО: Тест\nАнкета заполнена: 15.06.2024\n")
	}

	surveys, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, surveys, 40)
}

func TestRepository_GetToday(t *testing.T) {
	repo := createTestRepository(t)

	writeRaw(t, repo, "today.txt", "1. ФИО: Сегодня\nАнкета заполнена: 15.06.2024\n")
	writeRaw(t, repo, "yesterday.txt", "1. ФИО: Вчера\nАнкета заполнена: 14.06.2024\n")
	writeRaw(t, repo, "undated.txt", "1. ФИО: Без даты\n")

	surveys, err := repo.GetToday()
	require.NoError(t, err)

	var names []string
	for _, s := range surveys {
		names = append(names, s.FullName)
	}
	// An undated record is stamped with the read time, which is today.
	assert.Equal(t, []string{"Сегодня", "Без даты"}, names)
}
