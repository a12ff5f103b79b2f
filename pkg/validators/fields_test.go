package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteTitleValidator(t *testing.T) {
	assert.NoError(t, NoteTitleValidator("Groceries"))
	assert.NoError(t, NoteTitleValidator(strings.Repeat("a", 200)))
	assert.Error(t, NoteTitleValidator(""))
	assert.Error(t, NoteTitleValidator(strings.Repeat("a", 201)))
}

func TestNoteContentValidator(t *testing.T) {
	assert.NoError(t, NoteContentValidator("buy milk"))
	assert.NoError(t, NoteContentValidator(strings.Repeat("a", 2500)))
	assert.Error(t, NoteContentValidator(""))
	assert.Error(t, NoteContentValidator(strings.Repeat("a", 2501)))
}

func TestTagNameValidator(t *testing.T) {
	assert.NoError(t, TagNameValidator("work"))
	assert.Error(t, TagNameValidator(""))
	assert.Error(t, TagNameValidator(strings.Repeat("x", 201)))
}

func TestProductNameValidator(t *testing.T) {
	assert.NoError(t, ProductNameValidator("Olive oil"))
	assert.Error(t, ProductNameValidator(""))
}

func TestAmountValidator(t *testing.T) {
	assert.NoError(t, AmountValidator(1))
	assert.Error(t, AmountValidator(0))
	assert.Error(t, AmountValidator(-3))
}

func TestRemindDateValidator(t *testing.T) {
	assert.NoError(t, RemindDateValidator(now.Add(time.Hour), now))
	assert.Error(t, RemindDateValidator(now.Add(-time.Minute), now))
}

func TestReminderTitleValidator(t *testing.T) {
	assert.NoError(t, ReminderTitleValidator("Water the plants"))
	assert.Error(t, ReminderTitleValidator(""))
}
