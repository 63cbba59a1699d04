package lisptest

import "testing"

func TestBaseLibrary(t *testing.T) {
	tests := TestSuite{
		{"arithmetic", TestSequence{
			{"(- 5 7 8 9)", "-19", ""},
			{"(- 5)", "-5", ""},
			{"(/ 8 2 2)", "2", ""},
			{"(/ 4)", "0.25", ""},
			{"(abs -3)", "3", ""},
			{"(abs 3)", "3", ""},
			{"(remainder 7 3)", "1", ""},
			{"(remainder -7 2)", "-1", ""},
		}},
		{"logic", TestSequence{
			{"(not #f)", "#t", ""},
			{"(not 0)", "#t", ""},
			{"(not 1)", "#f", ""},
			{"(and 1 #t)", "#t", ""},
			{"(and 1 0)", "#f", ""},
			{"(and)", "#t", ""},
			{"(or 0 #f)", "#f", ""},
			{"(or 0 2)", "#t", ""},
		}},
		{"comparison", TestSequence{
			{"(= 1 1 1)", "#t", ""},
			{"(= 1 2)", "#f", ""},
			{"(> 2 1)", "#t", ""},
			{"(> 1 2)", "#f", ""},
			{"(<= 2 2)", "#t", ""},
			{"(>= 1 2)", "#f", ""},
		}},
		{"lists", TestSequence{
			{"(length (list 1 2 3))", "3", ""},
			{"(length '())", "0", ""},
			{"(reverse (list 1 2 3))", "(3, (2, (1, '())))", ""},
			{"(append (list 1) (list 2 3))", "(1, (2, (3, '())))", ""},
			{"(map (list 1 2) (lambda (x) (* x x)))", "(1, (4, '()))", ""},
			{"(filter (list 1 2 3 4) (lambda (x) (< 2 x)))", "(3, (4, '()))", ""},
			{"(reduce (list 1 2 3) + 0)", "6", ""},
		}},
		{"fixed point", TestSequence{
			{"(define fact (Y (lambda (self) (lambda (n) (if (= n 0) 1 (* n (self (- n 1))))))))", "#<void>", ""},
			{"(fact 5)", "120", ""},
		}},
		{"closure pairs", TestSequence{
			{`(load "Test.scm")`, "#<void>", ""},
			{"(define p (Cons 1 2))", "#<void>", ""},
			{"(Car p)", "1", ""},
			{"(Cdr p)", "2", ""},
			{"(define pp (Cons 3 p))", "#<void>", ""},
			{"(Car (Cdr pp))", "1", ""},
		}},
		{"host math", TestSequence{
			{"(sqrt 16)", "4", ""},
			{"(floor 2.5)", "2", ""},
			{"(log 2 8)", "3", ""},
			{"(sqrt #t)", "argument is not a number: #t", ""},
		}},
	}
	RunTestSuite(t, tests)
}
