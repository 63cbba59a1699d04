package lisptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"closure snapshot", TestSequence{
			{"(define (get-y) y)", "#<void>", ""},
			{"(define y 5)", "#<void>", ""},
			{"(get-y)", "unbound identifier: y", ""},
			{"(define f (lambda () z))", "#<void>", ""},
			{"(define z 1)", "#<void>", ""},
			{"(f)", "unbound identifier: z", ""},
		}},
		{"rebinding after capture", TestSequence{
			{"(define a 1)", "#<void>", ""},
			{"(define (get-a) a)", "#<void>", ""},
			{"(define a 2)", "#<void>", ""},
			{"(get-a)", "1", ""},
			{"a", "2", ""},
		}},
		{"capture at evaluation", TestSequence{
			{"(define (adder n) (lambda (x) (+ x n)))", "#<void>", ""},
			{"((adder 3) 4)", "7", ""},
			{"(define add5 (adder 5))", "#<void>", ""},
			{"(add5 1)", "6", ""},
			{"((adder 1) 1)", "2", ""},
			{"(((lambda (x) (lambda () (+ x 2))) 3))", "5", ""},
		}},
		{"recursion", TestSequence{
			{"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))", "#<void>", ""},
			{"(fact 5)", "120", ""},
			{"(fact 0)", "1", ""},
		}},
		{"mutual recursion", TestSequence{
			{"(define (my-even? n) (if (= n 0) #t (my-odd? (- n 1))))", "#<void>", ""},
			{"(define (my-odd? n) (if (= n 0) #f (my-even? (- n 1))))", "#<void>", ""},
			{"(my-odd? 0)", "#f", ""},
			{"(my-odd? 1)", "#t", ""},
			{"(my-odd? 3)", "unbound identifier: my-odd?", ""},
		}},
		{"no leakage", TestSequence{
			{"(let ((q 1)) (define r 2) (+ q r))", "3", ""},
			{"r", "unbound identifier: r", ""},
			{"q", "unbound identifier: q", ""},
			{"(define (h) (define inner 4) inner)", "#<void>", ""},
			{"(h)", "4", ""},
			{"inner", "unbound identifier: inner", ""},
			{"((lambda (w) w) 9)", "9", ""},
			{"w", "unbound identifier: w", ""},
		}},
		{"numeric truthiness", TestSequence{
			{"(define n 0)", "#<void>", ""},
			{"(if n 1 2)", "2", ""},
			{"(not n)", "#t", ""},
			{"(define n 5)", "#<void>", ""},
			{"(if n 1 2)", "1", ""},
			{"(not n)", "#f", ""},
		}},
	}
	RunTestSuite(t, tests)
}
