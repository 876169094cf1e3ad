package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestNewEmail(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("a@b.com"), NewEmail("A@B.com"))
	assert.Equal(Email("test@test.test"), NewEmail("  Test@Test.TEST "))
}

func TestNewPaginationFromOneBased(t *testing.T) {
	cases := []struct {
		page           uint
		limit          uint
		expectedPage   uint
		expectedOffset uint
	}{
		{page: 0, limit: 10, expectedPage: 0, expectedOffset: 0},
		{page: 1, limit: 10, expectedPage: 0, expectedOffset: 0},
		{page: 2, limit: 10, expectedPage: 1, expectedOffset: 10},
		{page: 5, limit: 2, expectedPage: 4, expectedOffset: 8},
		{page: 3, limit: 0, expectedPage: 2, expectedOffset: 0},
	}
	for _, testcase := range cases {
		t.Run(fmt.Sprintf("%d-%d", testcase.page, testcase.limit), func(t *testing.T) {
			p := NewPaginationFromOneBased(testcase.page, testcase.limit)
			require.Equal(t, testcase.expectedPage, p.Page)
			require.Equal(t, testcase.limit, p.Limit)
			require.Equal(t, testcase.expectedOffset, p.Offset())
		})
	}
}
