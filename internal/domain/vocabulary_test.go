package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultVocabularyClassify(t *testing.T) {
	vocab := DefaultVocabulary()

	verdict, ok := vocab.Classify("yeah")
	require.True(t, ok)
	require.Equal(t, VerdictAffirmative, verdict)

	verdict, ok = vocab.Classify("いいえ")
	require.True(t, ok)
	require.Equal(t, VerdictNegative, verdict)

	_, ok = vocab.Classify("maybe")
	require.False(t, ok)
}

func TestVocabularyExtendDoesNotMutateOriginal(t *testing.T) {
	base := DefaultVocabulary()
	yes, no := base.Size()

	extended := base.Extend([]string{" Sure "}, []string{"NEVER"})

	verdict, ok := extended.Classify("sure")
	require.True(t, ok)
	require.Equal(t, VerdictAffirmative, verdict)
	verdict, ok = extended.Classify("never")
	require.True(t, ok)
	require.Equal(t, VerdictNegative, verdict)

	_, ok = base.Classify("sure")
	require.False(t, ok)
	gotYes, gotNo := base.Size()
	require.Equal(t, yes, gotYes)
	require.Equal(t, no, gotNo)
}

func TestUserTagAndMemberDisplayName(t *testing.T) {
	legacy := &User{ID: "1", Username: "pekora", Discriminator: "1234"}
	modern := &User{ID: "2", Username: "miko", Discriminator: "0", GlobalName: "Sakura Miko"}

	require.Equal(t, "pekora#1234", legacy.Tag())
	require.Equal(t, "miko", modern.Tag())

	require.Equal(t, "Sakura Miko", (&Member{User: modern}).DisplayName())
	require.Equal(t, "Peko", (&Member{User: legacy, Nick: "Peko"}).DisplayName())
	require.True(t, (&Member{User: modern}).Matches("sakura"))
	require.True(t, (&Member{User: legacy}).Matches("#1234"))
	require.False(t, (&Member{User: legacy}).Matches(""))
}
