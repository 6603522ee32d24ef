package script

// Parser is a recursive-descent parser driven by a two-token lookahead
// buffer filled directly from the Lexer. Every expression constructor
// it calls performs its own type check immediately, so a Parser that
// returns successfully has already fully type-checked the program.
type Parser struct {
	lexer *Lexer
	buf   [2]Token
}

// NewParser primes the lookahead buffer with the first two tokens of
// the stream lexer produces.
func NewParser(lexer *Lexer) (*Parser, error) {
	p := &Parser{lexer: lexer}
	first, err := lexer.NextToken()
	if err != nil {
		return nil, err
	}
	second, err := lexer.NextToken()
	if err != nil {
		return nil, err
	}
	p.buf = [2]Token{first, second}
	return p, nil
}

func (p *Parser) current() Token { return p.buf[0] }
func (p *Parser) peek() Token    { return p.buf[1] }

func (p *Parser) advance() error {
	p.buf[0] = p.buf[1]
	next, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.buf[1] = next
	return nil
}

func (p *Parser) match(kind TokenKind) (Token, error) {
	if p.current().Kind != kind {
		return Token{}, newSyntaxErrorAt(p.current(), "expect '%s', found '%s'", kind, p.current().Kind)
	}
	tok := p.current()
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) matchAny(label string, kinds ...TokenKind) (Token, error) {
	for _, k := range kinds {
		if p.current().Kind == k {
			tok := p.current()
			if err := p.advance(); err != nil {
				return Token{}, err
			}
			return tok, nil
		}
	}
	return Token{}, newSyntaxErrorAt(p.current(), "expect %s, found '%s'", label, p.current().Kind)
}

var typeKeywords = []TokenKind{KeywordInt, KeywordFloat, KeywordBoolean, KeywordString, KeywordChar}

// ParseProgram parses the whole input as a sequence of statements and
// returns it as a single block, ready to Execute.
func (p *Parser) ParseProgram() (Statement, error) {
	var statements []Statement
	for p.current().Kind != EndOfInput {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &blockStatement{statements: statements}, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.current().Kind {
	case LeftBrace:
		return p.parseBlock()
	case KeywordFor:
		return p.parseFor()
	case KeywordWhile:
		return p.parseWhile()
	case KeywordBreak:
		if _, err := p.match(KeywordBreak); err != nil {
			return nil, err
		}
		if _, err := p.match(Semicolon); err != nil {
			return nil, err
		}
		return &breakStatement{}, nil
	case KeywordContinue:
		if _, err := p.match(KeywordContinue); err != nil {
			return nil, err
		}
		if _, err := p.match(Semicolon); err != nil {
			return nil, err
		}
		return &continueStatement{}, nil
	case KeywordReturn:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() (Statement, error) {
	if _, err := p.match(LeftBrace); err != nil {
		return nil, err
	}
	var statements []Statement
	for p.current().Kind != RightBrace {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.match(RightBrace); err != nil {
		return nil, err
	}
	return &blockStatement{statements: statements}, nil
}

func (p *Parser) parseFor() (Statement, error) {
	if _, err := p.match(KeywordFor); err != nil {
		return nil, err
	}
	if _, err := p.match(LeftParen); err != nil {
		return nil, err
	}

	var init Statement
	if p.current().Kind != Semicolon {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		init = &expressionStatement{expr: expr}
	}
	if _, err := p.match(Semicolon); err != nil {
		return nil, err
	}

	var condition Expression
	if p.current().Kind != Semicolon {
		var err error
		condition, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.match(Semicolon); err != nil {
		return nil, err
	}

	var update Statement
	if p.current().Kind != RightParen {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		update = &expressionStatement{expr: expr}
	}
	if _, err := p.match(RightParen); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &forStatement{init: init, condition: condition, update: update, body: body}, nil
}

func (p *Parser) parseWhile() (Statement, error) {
	if _, err := p.match(KeywordWhile); err != nil {
		return nil, err
	}
	if _, err := p.match(LeftParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(RightParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &whileStatement{condition: condition, body: body}, nil
}

func (p *Parser) parseReturn() (Statement, error) {
	if _, err := p.match(KeywordReturn); err != nil {
		return nil, err
	}
	if p.current().Kind == Semicolon {
		if _, err := p.match(Semicolon); err != nil {
			return nil, err
		}
		return &returnStatement{}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(Semicolon); err != nil {
		return nil, err
	}
	return &returnStatement{expr: expr}, nil
}

func (p *Parser) parseExpressionStatement() (Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(Semicolon); err != nil {
		return nil, err
	}
	return &expressionStatement{expr: expr}, nil
}

// parseExpression is the grammar's lowest-precedence entry point.
// Assignment and the conditional (ternary) operator have no place in
// this language's expression grammar, so it falls straight through to
// logical-or, matching the pass-through original assignment/conditional
// productions collapse to once there is nothing left for them to do.
func (p *Parser) parseExpression() (Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (Expression, error) {
	lhs, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == LogicalOr {
		opTok, err := p.match(LogicalOr)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		lhs, err = newLogicalOrNode(lhs, rhs, opTok)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseLogicalAnd() (Expression, error) {
	lhs, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == LogicalAnd {
		opTok, err := p.match(LogicalAnd)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		lhs, err = newLogicalAndNode(lhs, rhs, opTok)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseBitOr() (Expression, error) {
	lhs, err := p.parseBitXor()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == BitOr {
		opTok, err := p.match(BitOr)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseBitXor()
		if err != nil {
			return nil, err
		}
		lhs, err = newBitOrNode(lhs, rhs, opTok)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseBitXor() (Expression, error) {
	lhs, err := p.parseBitAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == BitXor {
		opTok, err := p.match(BitXor)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseBitAnd()
		if err != nil {
			return nil, err
		}
		lhs, err = newBitXorNode(lhs, rhs, opTok)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseBitAnd() (Expression, error) {
	lhs, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == BitAnd {
		opTok, err := p.match(BitAnd)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		lhs, err = newBitAndNode(lhs, rhs, opTok)
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseEquality() (Expression, error) {
	lhs, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == Equal || p.current().Kind == NotEqual {
		opTok := p.current()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		if opTok.Kind == Equal {
			lhs, err = newEqualNode(lhs, rhs, opTok)
		} else {
			lhs, err = newNotEqualNode(lhs, rhs, opTok)
		}
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseRelational() (Expression, error) {
	lhs, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.current().Kind
		if kind != Less && kind != LessEqual && kind != Greater && kind != GreaterEqual {
			break
		}
		opTok := p.current()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		switch kind {
		case Less:
			lhs, err = newLessNode(lhs, rhs, opTok)
		case LessEqual:
			lhs, err = newLessEqualNode(lhs, rhs, opTok)
		case Greater:
			lhs, err = newGreaterNode(lhs, rhs, opTok)
		default:
			lhs, err = newGreaterEqualNode(lhs, rhs, opTok)
		}
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseShift() (Expression, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == ShiftLeft || p.current().Kind == ShiftRight {
		kind := p.current().Kind
		opTok := p.current()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if kind == ShiftLeft {
			lhs, err = newShiftLeftNode(lhs, rhs, opTok)
		} else {
			lhs, err = newShiftRightNode(lhs, rhs, opTok)
		}
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseAdditive() (Expression, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == Plus || p.current().Kind == Minus {
		kind := p.current().Kind
		opTok := p.current()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if kind == Plus {
			lhs, err = newAddNode(lhs, rhs, opTok)
		} else {
			lhs, err = newSubNode(lhs, rhs, opTok)
		}
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (Expression, error) {
	lhs, err := p.parseCast()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.current().Kind
		if kind != Asterisk && kind != Slash && kind != Mod {
			break
		}
		opTok := p.current()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseCast()
		if err != nil {
			return nil, err
		}
		switch kind {
		case Asterisk:
			lhs, err = newMulNode(lhs, rhs, opTok)
		case Slash:
			lhs, err = newDivNode(lhs, rhs, opTok)
		default:
			lhs, err = newModNode(lhs, rhs, opTok)
		}
		if err != nil {
			return nil, err
		}
	}
	return lhs, nil
}

// parseCast recognizes "(" type ")" operand. A parenthesised
// sub-expression also begins with "(", so the second lookahead token
// decides: only a type keyword after "(" commits to a cast.
func (p *Parser) parseCast() (Expression, error) {
	if p.current().Kind != LeftParen || variableTypeFromToken(p.peek().Kind) == TypeErr {
		return p.parseUnary()
	}
	if _, err := p.match(LeftParen); err != nil {
		return nil, err
	}
	typeTok, err := p.matchAny("a type name", typeKeywords...)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(RightParen); err != nil {
		return nil, err
	}
	operand, err := p.parseCast()
	if err != nil {
		return nil, err
	}
	return newCastNode(operand, variableTypeFromToken(typeTok.Kind), typeTok)
}

func (p *Parser) parseUnary() (Expression, error) {
	switch p.current().Kind {
	case Plus:
		if _, err := p.match(Plus); err != nil {
			return nil, err
		}
		return p.parseUnary()
	case Minus:
		opTok, err := p.match(Minus)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newNegativeNode(operand, opTok)
	case BitNot:
		opTok, err := p.match(BitNot)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newBitNotNode(operand, opTok)
	case LogicalNot:
		opTok, err := p.match(LogicalNot)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newLogicalNotNode(operand, opTok)
	case KeywordNew:
		return p.parseNew()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parseNew() (Expression, error) {
	opTok, err := p.match(KeywordNew)
	if err != nil {
		return nil, err
	}
	typeTok, err := p.matchAny("a type name", typeKeywords...)
	if err != nil {
		return nil, err
	}
	elemType := variableTypeFromToken(typeTok.Kind)

	var dims []Expression
	for p.current().Kind == LeftBracket {
		if _, err := p.match(LeftBracket); err != nil {
			return nil, err
		}
		size, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(RightBracket); err != nil {
			return nil, err
		}
		dims = append(dims, size)
	}
	if len(dims) == 0 {
		return nil, newSyntaxErrorAt(p.current(), "expect '[', found '%s'", p.current().Kind)
	}
	return newNewArrayNode(elemType, dims, opTok)
}

func (p *Parser) parsePrimary() (Expression, error) {
	tok := p.current()
	switch tok.Kind {
	case LiteralInt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newIntLiteral(tok)
	case LiteralFloat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newFloatLiteral(tok)
	case LiteralTrue, LiteralFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newBoolLiteral(tok), nil
	case LiteralString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newStringLiteral(tok), nil
	case LiteralChar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return newCharLiteral(tok), nil
	case LeftParen:
		if _, err := p.match(LeftParen); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(RightParen); err != nil {
			return nil, err
		}
		return expr, nil
	case Identifier:
		return nil, newSyntaxErrorAt(tok, "identifiers are not supported")
	default:
		return nil, newSyntaxErrorAt(tok, "unexpected token '%s'", tok.Content)
	}
}
