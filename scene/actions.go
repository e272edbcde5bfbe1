package scene

import (
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/physics"
	"github.com/lixenwraith/flappy/systems"
)

// ===== Boot =====

func (c *Controller) enterBoot() {
	c.texts.loading = c.createText(constants.LoadingAnchorX, constants.LoadingAnchorY, constants.LoadingText)
}

// ===== Preload =====

func (c *Controller) enterPreload() {
	c.assetsReady.Store(false)
	c.assetsFailed.Store(false)
	c.ctx.Loader.Load(c.onAssetsLoaded)
}

func (c *Controller) exitPreload() {
	if c.texts.loading != 0 {
		c.ctx.Presenter.Kill(c.texts.loading)
		c.texts.loading = 0
	}
}

// ===== MainMenu =====

func (c *Controller) enterMainMenu() {
	now := c.ctx.Now()
	c.ctx.Session.Reset()

	c.spawner.Reset()
	c.bird.Reset()
	c.clouds.Start(now)
	c.rain.Start(now)
	c.fence.Reset()

	c.ensureTexts()
	p := c.ctx.Presenter
	p.SetText(c.texts.instructions, constants.InstructionsText)
	p.SetVisible(c.texts.title, true)
	p.SetVisible(c.texts.instructions, true)
	p.SetVisible(c.texts.about, true)
	p.SetVisible(c.texts.highScore, false)
	p.SetVisible(c.texts.score, false)

	c.gate.OnActivateOnce("start-game", func() {
		c.bird.Flap()
		_ = c.Request(Play)
	})
}

func (c *Controller) updateMainMenu(dt time.Duration) {
	c.bird.Hover(c.ctx.Now())
	c.bird.Update(dt, false)
	c.updateDecoration(dt)
	c.fence.Update(dt)
}

// ===== Play =====

func (c *Controller) enterPlay() {
	c.ctx.Session.Started = true
	c.spawner.Start(c.ctx.Now())
	c.bird.EnableGravity()

	p := c.ctx.Presenter
	p.SetVisible(c.texts.title, false)
	p.SetVisible(c.texts.instructions, false)
	p.SetVisible(c.texts.about, false)
	p.SetText(c.texts.score, systems.FormatScore(0))
	p.SetVisible(c.texts.score, true)
	c.score.SetScoreText(c.texts.score)

	c.gate.OnActivate("flap", c.bird.Flap)
}

func (c *Controller) updatePlay(dt time.Duration) {
	c.bird.Update(dt, true)
	c.spawner.Update(dt)
	c.updateDecoration(dt)

	if c.crashed() {
		_ = c.Request(GameOver)
		return
	}
	c.score.CheckTraversal(c.bird.Body())
}

// crashed reports a tower hit or the bird leaving the playfield
func (c *Controller) crashed() bool {
	body := c.bird.Body()
	if c.ctx.Physics.IsOutOfBounds(body) {
		return true
	}
	return c.ctx.Physics.OnOverlap(body, c.spawner.ObstacleBodies(), func(_ *physics.Body) {}) > 0
}

// ===== GameOver =====

func (c *Controller) enterGameOver() {
	c.ctx.Session.Over = true
	c.spawner.Stop()
	c.spawner.Freeze()
	c.bird.Kill()
	c.ctx.PlaySound(engine.Sound.PlayHurt)

	high, session := c.score.FinalizeHighScore(c.ctx.Session.Score)

	p := c.ctx.Presenter
	p.SetVisible(c.texts.score, false)
	p.SetText(c.texts.highScore, systems.HighScoreText(high, session))
	p.SetVisible(c.texts.highScore, true)
	p.SetText(c.texts.instructions, constants.InstructionsTextGameOver)
	p.SetVisible(c.texts.instructions, true)

	c.gate.OnActivateOnce("return-to-menu", func() {
		_ = c.Request(MainMenu)
	})
}

func (c *Controller) updateGameOver(dt time.Duration) {
	c.bird.Update(dt, true)
	c.spawner.Update(dt)
	c.updateDecoration(dt)
}

// ===== Shared =====

func (c *Controller) updateDecoration(dt time.Duration) {
	c.clouds.Update(dt)
	c.rain.Update(dt)
}

// ensureTexts creates the menu and score texts on first use
func (c *Controller) ensureTexts() {
	if c.texts.title != 0 {
		return
	}
	c.texts.title = c.createText(constants.TitleAnchorX, constants.TitleAnchorY, constants.TitleText)
	c.texts.instructions = c.createText(constants.InstructionsAnchorX, constants.InstructionsAnchorY, constants.InstructionsText)
	c.texts.about = c.createText(constants.AboutAnchorX, constants.AboutAnchorY, constants.AboutText)
	c.texts.highScore = c.createText(constants.HighScoreAnchorX, constants.HighScoreAnchorY, "")
	c.texts.score = c.createText(constants.ScoreAnchorX, constants.ScoreAnchorY, "")
}

func (c *Controller) createText(fx, fy float64, text string) component.Entity {
	g := c.ctx.Config.Game
	e := c.ctx.Presenter.CreateEntityAt(g.WorldWidth*fx, g.WorldHeight*fy)
	c.ctx.Presenter.SetText(e, text)
	return e
}
