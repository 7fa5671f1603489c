package style

// TransactionSink is implemented by undo systems that want to coalesce every
// buffer touch of one style operation into a single undoable action.
type TransactionSink interface {
	BeginGroup(name string)
	EndGroup(name string)
}

// Transaction is one undo-grouped mutation scope. Usage:
//
//	txn := m.beginTransaction("Toggle Bold")
//	defer txn.Commit()
//
// Commit is guaranteed on every exit path and is safe to call more than once;
// only the first call has effect.
type Transaction struct {
	name string
	sink TransactionSink
	open bool
}

func newTransaction(name string, sink TransactionSink) *Transaction {
	if sink != nil {
		sink.BeginGroup(name)
	}
	return &Transaction{name: name, sink: sink, open: true}
}

func (t *Transaction) Commit() {
	if !t.open {
		return
	}
	t.open = false
	if t.sink != nil {
		t.sink.EndGroup(t.name)
	}
}
