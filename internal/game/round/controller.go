package round

import (
	"github.com/palemoky/pontoon/internal/game/card"
)

// Action 玩家操作
type Action int

const (
	Twist Action = iota
	Stick
)

func (a Action) String() string {
	if a == Stick {
		return "Stick"
	}
	return "Twist"
}

// Display receives everything the player gets to see during a round.
type Display interface {
	ShowMessage(msg string)
	ShowPlayerHand(h *card.Hand)
	ShowBankerUpCard(c card.Card)
	ShowBankerHand(h *card.Hand)
	ShowFinalHands(player, banker *card.Hand)
	ShowOutcome(r Result)
}

// Input blocks until the player decides. Implementations re-prompt on bad
// input and only ever return valid values.
type Input interface {
	PlayerAction() Action
	YesNo(prompt string) bool
}

// Controller drives a Round against blocking Display and Input collaborators.
type Controller struct {
	display Display
	input   Input
}

// NewController 创建控制器
func NewController(display Display, input Input) *Controller {
	return &Controller{display: display, input: input}
}

// PlayRound plays one full round from the deal to the announced outcome.
// Any error is an invariant violation and the round is abandoned.
func (c *Controller) PlayRound(deck Dealer) (Result, error) {
	r := New(deck)
	if err := r.Deal(); err != nil {
		return Result{}, err
	}
	if r.Reshuffled() {
		c.display.ShowMessage("The deck was running low and has been reshuffled.")
	}

	c.display.ShowPlayerHand(r.Player())
	if up, ok := r.BankerUpCard(); ok {
		c.display.ShowBankerUpCard(up)
	}

	if err := c.playerTurn(r); err != nil {
		return Result{}, err
	}

	if r.Phase() == PhaseBankerTurn {
		if err := c.bankerTurn(r); err != nil {
			return Result{}, err
		}
	}

	res := r.Result()
	c.display.ShowFinalHands(r.Player(), r.Banker())
	c.display.ShowOutcome(res)
	return res, nil
}

func (c *Controller) playerTurn(r *Round) error {
	for r.Phase() == PhasePlayerTurn {
		switch c.input.PlayerAction() {
		case Twist:
			if _, err := r.Twist(); err != nil {
				return err
			}
			c.display.ShowPlayerHand(r.Player())
		case Stick:
			if err := r.Stick(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller) bankerTurn(r *Round) error {
	c.display.ShowBankerHand(r.Banker())
	for r.Phase() == PhaseBankerTurn {
		drew, err := r.BankerStep()
		if err != nil {
			return err
		}
		if drew {
			c.display.ShowBankerHand(r.Banker())
		}
	}
	return nil
}

// PlayAgain asks the player whether to deal another round.
func (c *Controller) PlayAgain() bool {
	return c.input.YesNo("Play another round?")
}
