package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBirthday(t *testing.T) {
	acc := Account{Name: "Ana", BirthDay: 14, BirthMonth: 3}

	assert.True(t, acc.Birthday(time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)))
	assert.False(t, acc.Birthday(time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)))
	assert.False(t, acc.Birthday(time.Date(2026, time.April, 14, 10, 0, 0, 0, time.UTC)))
}
