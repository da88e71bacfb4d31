//go:build unit

package commands_test

import (
	"context"
	"testing"

	"chefbook/internal/domain/user"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BindingCommandsTestSuite struct {
	suite.Suite
	store    *fakeStore
	notifier *fakeNotifier
	cmds     commands.BindingCommands

	foodieID uuid.UUID
	chefID   uuid.UUID
}

const chefCode = "a1b2c3d4"

func (s *BindingCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.notifier = &fakeNotifier{}
	s.cmds = commands.NewBindingUseCase(newFakeUoW(s.store), clock.NewRealClock(), s.notifier)

	s.foodieID = uuid.New()
	s.chefID = uuid.New()
	s.store.chefsByCode[chefCode] = &shared.ChefSnapshot{ID: s.chefID, Nickname: "Chef Wang"}
}

func (s *BindingCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestBindingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BindingCommandsTestSuite))
}

func (s *BindingCommandsTestSuite) TestBind() {
	s.Run("valid code binds and tells both parties", func() {
		result, err := s.cmds.Bind(context.Background(), s.foodieID, user.RoleFoodie, chefCode)
		s.Require().NoError(err)
		s.Equal(s.chefID, result.ChefID)
		s.Equal("Chef Wang", result.ChefNickname)

		s.store.mu.Lock()
		_, bound := s.store.bindings[s.foodieID]
		s.store.mu.Unlock()
		s.True(bound)
		s.NotEmpty(s.notifier.eventsFor(s.chefID))
		s.NotEmpty(s.notifier.eventsFor(s.foodieID))
	})

	s.Run("unknown code", func() {
		_, err := s.cmds.Bind(context.Background(), s.foodieID, user.RoleFoodie, "00000000")
		s.ErrorIs(err, commands.ErrInvalidBindingCode)
	})

	s.Run("chef cannot bind as a foodie", func() {
		_, err := s.cmds.Bind(context.Background(), s.chefID, user.RoleChef, chefCode)
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("a chef holding their own code cannot self bind", func() {
		_, err := s.cmds.Bind(context.Background(), s.chefID, user.RoleFoodie, chefCode)
		s.ErrorIs(err, commands.ErrSelfBinding)
	})

	s.Run("second binding requires an unbind first", func() {
		_, err := s.cmds.Bind(context.Background(), s.foodieID, user.RoleFoodie, chefCode)
		s.Require().NoError(err)

		otherChef := uuid.New()
		s.store.chefsByCode["ffff0000"] = &shared.ChefSnapshot{ID: otherChef, Nickname: "Chef Li"}
		_, err = s.cmds.Bind(context.Background(), s.foodieID, user.RoleFoodie, "ffff0000")
		s.ErrorIs(err, commands.ErrAlreadyBound)
	})
}

func (s *BindingCommandsTestSuite) TestUnbind() {
	s.Run("bound foodie unbinds", func() {
		_, err := s.cmds.Bind(context.Background(), s.foodieID, user.RoleFoodie, chefCode)
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.Unbind(context.Background(), s.foodieID, user.RoleFoodie))

		s.store.mu.Lock()
		_, bound := s.store.bindings[s.foodieID]
		s.store.mu.Unlock()
		s.False(bound)
	})

	s.Run("unbound foodie has nothing to unbind", func() {
		err := s.cmds.Unbind(context.Background(), uuid.New(), user.RoleFoodie)
		s.ErrorIs(err, commands.ErrNotBound)
	})

	s.Run("chefs do not unbind", func() {
		err := s.cmds.Unbind(context.Background(), s.chefID, user.RoleChef)
		s.ErrorIs(err, commands.ErrForbidden)
	})
}
