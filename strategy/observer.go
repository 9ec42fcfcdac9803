package strategy

import "github.com/rs/zerolog/log"

// Observer is told whether each selection explored or exploited.
type Observer interface {
	Explored(arm int)
	Exploited(arm int)
}

type noObserver struct{}

func (noObserver) Explored(int)  {}
func (noObserver) Exploited(int) {}

// LogObserver logs every decision at debug level.
type LogObserver struct {
	Name string
}

func (l LogObserver) Explored(arm int) {
	log.Debug().Str("strategy", l.Name).Int("arm", arm).Msg("exploring")
}

func (l LogObserver) Exploited(arm int) {
	log.Debug().Str("strategy", l.Name).Int("arm", arm).Msg("exploiting")
}

type multiObserver []Observer

// Observers fans decisions out to every non-nil observer.
func Observers(observers ...Observer) Observer {
	m := multiObserver{}
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multiObserver) Explored(arm int) {
	for _, o := range m {
		o.Explored(arm)
	}
}

func (m multiObserver) Exploited(arm int) {
	for _, o := range m {
		o.Exploited(arm)
	}
}
