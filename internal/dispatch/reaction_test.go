package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/slash-dispatch/internal/core"
	"github.com/sevigo/slash-dispatch/internal/mocks"
)

func TestNotifier_AddReaction(t *testing.T) {
	repo := core.RepositoryReference{Owner: "acme", Name: "app"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().CreateIssueCommentReaction(gomock.Any(), "acme", "app", int64(5), "eyes").Return(nil)

		assert.NoError(t, NewNotifier(client).AddReaction(context.Background(), repo, 5, core.ReactionEyes))
	})

	t.Run("api error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		apiErr := errors.New("422 already reacted")
		client.EXPECT().CreateIssueCommentReaction(gomock.Any(), "acme", "app", int64(5), "+1").Return(apiErr)

		err := NewNotifier(client).AddReaction(context.Background(), repo, 5, core.ReactionThumbsUp)
		assert.ErrorIs(t, err, core.ErrReactionFailed)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("invalid kind is rejected locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		err := NewNotifier(client).AddReaction(context.Background(), repo, 5, core.ReactionKind("thumbsup"))
		assert.ErrorIs(t, err, core.ErrReactionFailed)
	})
}

func TestPermissionQuery_Level(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := core.RepositoryReference{Owner: "acme", Name: "app"}

	client.EXPECT().GetCollaboratorPermission(gomock.Any(), "acme", "app", "octocat").Return("admin", nil)
	client.EXPECT().GetCollaboratorPermission(gomock.Any(), "acme", "app", "ghost").Return("", errors.New("404"))

	q := NewPermissionQuery(client)

	level, err := q.Level(context.Background(), repo, "octocat")
	assert.NoError(t, err)
	assert.Equal(t, core.PermissionAdmin, level)

	_, err = q.Level(context.Background(), repo, "ghost")
	assert.ErrorIs(t, err, core.ErrAuthorizationQueryFailed)
}
