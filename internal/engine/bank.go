package engine

const DepositNote = "Deposit to Vault"

func (e *Engine) deposit(s GameState, c Deposit) Outcome {
	if c.Amount <= 0 || c.Amount > s.Player.CoinsActive {
		return noop(s)
	}
	s = s.Clone()
	s.Player.CoinsActive -= c.Amount
	s.Player.CoinsBank += c.Amount
	s.BankHistory = prependTx(s.BankHistory, BankTransaction{
		ID:     e.NewID(),
		Date:   stamp(e.now()),
		Amount: c.Amount,
		Note:   DepositNote,
		Kind:   TxDeposit,
	})
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Deposited %d coins to the Vault.", c.Amount)}, Applied: true}
}

func (e *Engine) withdraw(s GameState, c Withdraw) Outcome {
	if c.Amount <= 0 || c.Amount > s.Player.CoinsBank {
		return noop(s)
	}
	note := c.Note
	if note == "" {
		note = "Withdrawal"
	}
	s = s.Clone()
	s.Player.CoinsBank -= c.Amount
	s.Player.CoinsActive += c.Amount
	s.BankHistory = prependTx(s.BankHistory, BankTransaction{
		ID:     e.NewID(),
		Date:   stamp(e.now()),
		Amount: c.Amount,
		Note:   note,
		Kind:   TxWithdraw,
	})
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Withdrew %d coins: %s", c.Amount, note)}, Applied: true}
}

func prependTx(history []BankTransaction, tx BankTransaction) []BankTransaction {
	out := make([]BankTransaction, 0, len(history)+1)
	out = append(out, tx)
	return append(out, history...)
}
