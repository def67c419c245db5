package logic

import "go.uber.org/zap"

// Entry is one validated knowledge-base record: a universal formula and the
// name it was recorded under.
type Entry struct {
	Formula Formula
	Name    string
}

// AssertForall validates a universal claim against the current
// interpretation and records it in the knowledge base. The claim is
// interpreted with the free-variable store seeding the local bindings; a
// false result rejects it and reports the falsifying assignment as
// evidence. Validation errors (unbound variables, deferred functions)
// propagate unchanged.
func (s *Session) AssertForall(binder string, scope Formula, name string) error {
	f := Forall(binder, scope)
	seed := NewBindings()
	for k, v := range s.free {
		seed = seed.Bind(k, v)
	}
	tv, witness, err := s.InterpretWith(f, seed)
	if err != nil {
		return err
	}
	if !tv {
		return &InconsistencyError{Formula: f.String(), Witness: witness}
	}
	s.kb = append(s.kb, Entry{Formula: f, Name: name})
	s.logger.Info("recorded universal fact",
		zap.String("session", s.id),
		zap.String("name", name),
		zap.String("formula", f.String()))
	return nil
}

// AssertExists rejects existential facts unconditionally.
func (s *Session) AssertExists(string, Formula, string) error {
	return ErrExistentialFact
}

// KnowledgeBase returns a copy of the recorded entries in insertion order.
func (s *Session) KnowledgeBase() []Entry {
	out := make([]Entry, len(s.kb))
	copy(out, s.kb)
	return out
}
