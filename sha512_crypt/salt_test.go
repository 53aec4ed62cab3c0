package sha512crypt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func u32(n uint32) *uint32 { return &n }

func TestParseSaltDefaultRounds(t *testing.T) {
	got, err := ParseSalt([]byte("$6$saltstring"))
	require.NoError(t, err)
	want := ParsedSalt{Rounds: nil, Salt: []byte("saltstring")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseSalt mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSaltExplicitRounds(t *testing.T) {
	got, err := ParseSalt([]byte("$6$rounds=10000$saltstringsaltstring"))
	require.NoError(t, err)
	require.NotNil(t, got.Rounds)
	require.Equal(t, uint32(10000), *got.Rounds)
	// Salt truncated to the first 16 bytes.
	require.Equal(t, []byte("saltstringsaltst"), got.Salt)
}

func TestParseSaltFromFullHash(t *testing.T) {
	// A complete hash string parses the same as its bare salt prefix.
	got, err := ParseSalt([]byte("$6$rounds=5000$toolongsaltstring$somesuffixdoesnotmatter"))
	require.NoError(t, err)
	require.Equal(t, uint32(5000), *got.Rounds)
	require.Equal(t, []byte("toolongsaltstrin"), got.Salt)
}

func TestParseSaltRoundsZeroClampsToMin(t *testing.T) {
	got, err := ParseSalt([]byte("$6$rounds=0$roundstoolow"))
	require.NoError(t, err)
	require.Equal(t, uint32(MinRounds), *got.Rounds)
}

func TestParseSaltRoundsOverflowClamps(t *testing.T) {
	got, err := ParseSalt([]byte("$6$rounds=999999999999999999999999$s"))
	require.NoError(t, err)
	require.Equal(t, uint32(MaxRounds), *got.Rounds)
}

func TestParseSaltEmptySalt(t *testing.T) {
	got, err := ParseSalt([]byte("$6$"))
	require.NoError(t, err)
	require.Nil(t, got.Rounds)
	require.Empty(t, got.Salt)
}

func TestParseSaltUnsupportedScheme(t *testing.T) {
	_, err := ParseSalt([]byte("$5$saltstring"))
	require.Error(t, err)
	var schemeErr UnsupportedSchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestParseSaltMalformedRoundsNoDigits(t *testing.T) {
	_, err := ParseSalt([]byte("$6$rounds=$salt"))
	require.Error(t, err)
	var malformed MalformedSaltError
	require.ErrorAs(t, err, &malformed)
}

func TestParseSaltMalformedRoundsMissingDollar(t *testing.T) {
	_, err := ParseSalt([]byte("$6$rounds=5000saltstring"))
	require.Error(t, err)
	var malformed MalformedSaltError
	require.ErrorAs(t, err, &malformed)
}

func TestClampRounds(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0, MinRounds},
		{999, MinRounds},
		{1000, 1000},
		{999999999, 999999999},
		{1000000000, MaxRounds},
		{4294967295, MaxRounds},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ClampRounds(c.in), "ClampRounds(%d)", c.in)
	}
}

func TestTruncateSalt(t *testing.T) {
	require.Equal(t, []byte(""), TruncateSalt([]byte("")))
	exact := []byte("0123456789abcdef")
	require.Equal(t, exact, TruncateSalt(exact))
	long := []byte("0123456789abcdefXXXX")
	require.Equal(t, []byte("0123456789abcdef"), TruncateSalt(long))
}

func TestFormatPrefixOmitsRoundsWhenNil(t *testing.T) {
	got := formatPrefix(nil, []byte("saltstring"))
	require.Equal(t, "$6$saltstring$", string(got))
}

func TestFormatPrefixPreservesExplicitDefaultRounds(t *testing.T) {
	// rounds=5000 is explicitly requested even though it equals
	// DefaultRounds: the literal field must still appear in the output.
	got := formatPrefix(u32(5000), []byte("saltstring"))
	require.Equal(t, "$6$rounds=5000$saltstring$", string(got))
}
